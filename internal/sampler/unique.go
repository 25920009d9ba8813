package sampler

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"quicklines/internal/rng"
)

// unique samples without replacement by resampling whenever a probe resolves
// to a line that was already emitted.
//
// There is no retry cap. Exhaustion is detected with a heuristic: once the
// bytes already emitted exceed lastOffset the run fails. The emitted bytes of
// all domain lines always exceed lastOffset, so the check trips before the
// retry loop could spin on a fully seen domain; with uneven line lengths it
// can also trip while unseen lines remain.
type unique struct {
	prober
}

// NewUnique returns a Sampler that emits count distinct lines, keyed by
// their start offsets.
func NewUnique(data []byte, lastOffset int, r *rng.RNG) Sampler {
	return &unique{prober{data: data, lastOffset: lastOffset, rng: r}}
}

func (s *unique) Sample(ctx context.Context, count int, emit EmitFunc) (Stats, error) {
	var st Stats
	seen := roaring64.New()

	for i := 0; i < count; i++ {
		if st.Bytes > s.lastOffset {
			return st, &ExhaustedError{Requested: count, Found: i}
		}

		for {
			if err := ctx.Err(); err != nil {
				return st, err
			}
			span, err := s.draw()
			if err != nil {
				return st, err
			}
			begin := uint64(span.Begin)
			if seen.Contains(begin) {
				st.Rejected++
				continue
			}
			seen.Add(begin)

			if err := emit(span); err != nil {
				return st, err
			}
			st.add(span)
			break
		}
	}
	return st, nil
}
