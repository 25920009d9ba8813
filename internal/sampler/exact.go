package sampler

import (
	"context"
	"fmt"

	"quicklines/internal/lines"
	"quicklines/internal/rng"
)

// exact samples uniformly over the lines of an index rather than over bytes.
type exact struct {
	idx         *lines.Index
	rng         *rng.RNG
	replacement bool
}

// NewExact returns a Sampler that picks line numbers from idx. Without
// replacement it runs a partial Fisher-Yates shuffle, so it fails up front
// when count exceeds idx.Len() and otherwise always terminates.
func NewExact(idx *lines.Index, r *rng.RNG, replacement bool) Sampler {
	return &exact{idx: idx, rng: r, replacement: replacement}
}

func (s *exact) Sample(ctx context.Context, count int, emit EmitFunc) (Stats, error) {
	n := s.idx.Len()
	if count == 0 {
		return Stats{}, nil
	}
	if n == 0 || (!s.replacement && count > n) {
		return Stats{}, &ExhaustedError{Requested: count, Found: n}
	}

	var pick func(i int) int
	if s.replacement {
		pick = func(int) int { return s.rng.Intn(n) }
	} else {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		pick = func(i int) int {
			j := i + s.rng.Intn(n-i)
			order[i], order[j] = order[j], order[i]
			return order[i]
		}
	}

	var st Stats
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		line := pick(i)
		span, ok := s.idx.Span(line)
		if !ok {
			return st, fmt.Errorf("%w: indexed line %d is unterminated", ErrInternal, line)
		}
		if err := emit(span); err != nil {
			return st, err
		}
		st.add(span)
	}
	return st, nil
}
