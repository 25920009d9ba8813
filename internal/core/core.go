// Package core is the entry point of a sampling run: it maps the input file,
// resolves the sampling domain, picks the sampler the configuration asks for
// and streams the sampled lines into a buffered sink.
package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"quicklines/internal/clock"
	"quicklines/internal/config"
	"quicklines/internal/lines"
	"quicklines/internal/mmap"
	"quicklines/internal/rng"
	"quicklines/internal/sampler"
)

// Result describes a finished (or aborted) run.
type Result struct {
	sampler.Stats
	Strategy string
	// Seed is the seed the random source was built from, nil for strategies
	// that draw no random numbers.
	Seed    *int64
	Elapsed time.Duration
}

// Runner executes sampling runs.
type Runner struct {
	log *zap.Logger
	clk clock.Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithClock replaces the wall clock, which times runs and seeds unseeded ones.
func WithClock(clk clock.Clock) Option {
	return func(r *Runner) { r.clk = clk }
}

// NewRunner returns a Runner that logs nowhere and uses the real clock
// unless told otherwise.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: zap.NewNop(), clk: clock.RealClock{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run maps the file at path and writes cfg.Count sampled lines to w.
func (r *Runner) Run(ctx context.Context, path string, cfg config.Config, w io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	f, err := mmap.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r.log.Debug("mapped file", zap.String("path", path), zap.Int("size", f.Len()))

	res, err := r.Sample(ctx, f.Bytes(), cfg, w)
	if err != nil {
		return res, fmt.Errorf("sampling %s: %w", path, err)
	}
	return res, nil
}

// Sample writes cfg.Count lines drawn from data to w. Lines written before
// a failure stay written: the output buffer is flushed on every return path.
func (r *Runner) Sample(ctx context.Context, data []byte, cfg config.Config, w io.Writer) (Result, error) {
	start := r.clk.Now()
	res := Result{Strategy: cfg.Strategy()}

	p, err := r.plan(data, cfg)
	if err != nil {
		return res, err
	}
	res.Seed = p.seed

	out := bufio.NewWriterSize(w, cfg.BufferSize)
	emit := p.writer(out)

	res.Stats, err = p.sampler.Sample(ctx, cfg.Count, emit)
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("writing output: %w", flushErr)
	}
	res.Elapsed = clock.Since(r.clk, start)

	fields := []zap.Field{
		zap.String("strategy", res.Strategy),
		zap.Int("requested", cfg.Count),
		zap.Int("emitted", res.Emitted),
		zap.Int("bytes", res.Bytes),
		zap.Int("rejected", res.Rejected),
		zap.Duration("elapsed", res.Elapsed),
	}
	if err != nil {
		r.log.Debug("sampling aborted", append(fields, zap.Error(err))...)
		return res, err
	}
	r.log.Debug("sampling finished", fields...)
	return res, nil
}

// plan is a sampler bound to its data, plus what the output writer needs.
type plan struct {
	data        []byte
	sampler     sampler.Sampler
	seed        *int64
	lineNumbers bool
	index       *lines.Index
}

func (r *Runner) plan(data []byte, cfg config.Config) (*plan, error) {
	p := &plan{data: data, lineNumbers: cfg.LineNumbers}

	if cfg.Stride {
		p.sampler = sampler.NewStride(data)
		r.log.Debug("resolved strategy", zap.String("strategy", cfg.Strategy()))
		return p, nil
	}

	lastOffset, err := lines.LastOffset(data)
	if err != nil {
		return nil, err
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = r.clk.Now().UnixNano()
	}
	p.seed = &seed
	random := rng.New(seed)

	switch {
	case cfg.Exact:
		p.index = lines.BuildIndex(data, lastOffset)
		p.sampler = sampler.NewExact(p.index, random, cfg.Replacement)
	case cfg.Replacement:
		p.sampler = sampler.NewReplacement(data, lastOffset, random)
	default:
		p.sampler = sampler.NewUnique(data, lastOffset, random)
	}

	r.log.Debug("resolved strategy",
		zap.String("strategy", cfg.Strategy()),
		zap.Int("last_offset", lastOffset),
		zap.Int64("seed", seed),
		zap.Bool("seeded", cfg.Seed != nil),
	)
	return p, nil
}

// writer returns the EmitFunc copying each sampled line, terminator
// included, to out.
func (p *plan) writer(out *bufio.Writer) sampler.EmitFunc {
	if !p.lineNumbers {
		return func(span lines.Span) error {
			_, err := out.Write(p.data[span.Begin:span.End])
			return err
		}
	}

	var prefix []byte
	return func(span lines.Span) error {
		if p.index == nil {
			p.index = lines.BuildIndex(p.data, len(p.data))
		}
		prefix = strconv.AppendInt(prefix[:0], int64(p.index.LineOf(span.Begin)+1), 10)
		prefix = append(prefix, '\t')
		if _, err := out.Write(prefix); err != nil {
			return err
		}
		_, err := out.Write(p.data[span.Begin:span.End])
		return err
	}
}
