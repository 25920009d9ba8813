package core

import (
	"context"

	"quicklines/internal/clock"
	"quicklines/internal/config"
	"quicklines/internal/lines"
)

// Line is one sampled line held in memory.
type Line struct {
	lines.Span
	// Number is the 1-based line number within the file.
	Number int
	// Text is the line without its terminator.
	Text string
}

// Collect samples like Sample but returns the lines instead of writing
// them. Line numbers are always resolved.
func (r *Runner) Collect(ctx context.Context, data []byte, cfg config.Config) ([]Line, Result, error) {
	start := r.clk.Now()
	res := Result{Strategy: cfg.Strategy()}

	p, err := r.plan(data, cfg)
	if err != nil {
		return nil, res, err
	}
	res.Seed = p.seed
	if p.index == nil {
		p.index = lines.BuildIndex(data, len(data))
	}

	out := make([]Line, 0, min(cfg.Count, 1024))
	res.Stats, err = p.sampler.Sample(ctx, cfg.Count, func(span lines.Span) error {
		out = append(out, Line{
			Span:   span,
			Number: p.index.LineOf(span.Begin) + 1,
			Text:   string(data[span.Begin : span.End-1]),
		})
		return nil
	})
	res.Elapsed = clock.Since(r.clk, start)
	return out, res, err
}
