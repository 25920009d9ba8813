package sampler

import (
	"context"

	"quicklines/internal/rng"
)

// replacement draws every line independently; duplicates are expected.
type replacement struct {
	prober
}

// NewReplacement returns a Sampler that emits exactly count lines, each
// resolved from its own random offset in [0, lastOffset].
func NewReplacement(data []byte, lastOffset int, r *rng.RNG) Sampler {
	return &replacement{prober{data: data, lastOffset: lastOffset, rng: r}}
}

func (s *replacement) Sample(ctx context.Context, count int, emit EmitFunc) (Stats, error) {
	var st Stats
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		span, err := s.draw()
		if err != nil {
			return st, err
		}
		if err := emit(span); err != nil {
			return st, err
		}
		st.add(span)
	}
	return st, nil
}
