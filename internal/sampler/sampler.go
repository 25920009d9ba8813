// Package sampler draws lines from a newline-delimited buffer.
//
// The random samplers probe uniformly distributed byte offsets in the
// sampling domain [0, lastOffset] and snap each probe forward to the next
// line start (see lines.Locate). Selection is therefore uniform over bytes,
// not over lines: a line following a long line is picked more often. The
// exact sampler trades a full index pass for true uniformity over lines.
package sampler

import (
	"context"
	"errors"
	"fmt"

	"quicklines/internal/lines"
	"quicklines/internal/rng"
)

var (
	// ErrNotEnoughLines is returned when more distinct lines are requested
	// than the file can supply.
	ErrNotEnoughLines = errors.New("not enough distinct lines")
	// ErrInternal signals a probe inside the sampling domain that did not
	// resolve to a line.
	ErrInternal = errors.New("internal error")
)

// ExhaustedError reports a without-replacement run that ran out of lines.
// Lines emitted before it was returned stay emitted.
type ExhaustedError struct {
	Requested int
	Found     int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("cannot sample %d unique lines from file with only %d lines", e.Requested, e.Found)
}

func (e *ExhaustedError) Unwrap() error { return ErrNotEnoughLines }

// EmitFunc receives each sampled line in the order it was drawn. Returning
// an error aborts the run.
type EmitFunc func(span lines.Span) error

// Stats summarizes one sampling run.
type Stats struct {
	Emitted  int
	Bytes    int
	Rejected int
}

func (s *Stats) add(span lines.Span) {
	s.Emitted++
	s.Bytes += span.Len()
}

// Sampler emits up to count lines through emit.
type Sampler interface {
	Sample(ctx context.Context, count int, emit EmitFunc) (Stats, error)
}

// prober resolves random offsets in [0, lastOffset] to lines.
type prober struct {
	data       []byte
	lastOffset int
	rng        *rng.RNG
}

func (p *prober) draw() (lines.Span, error) {
	offset := int(p.rng.Uint64Inclusive(uint64(p.lastOffset)))
	span, ok := lines.Locate(p.data, offset)
	if !ok {
		return lines.Span{}, fmt.Errorf("%w: no line at offset %d of %d", ErrInternal, offset, len(p.data))
	}
	return span, nil
}
