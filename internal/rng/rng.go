// Package rng provides the seedable random source used to pick probe offsets.
package rng

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces uniformly distributed 64-bit values.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// RNG draws bounded integers from a Source. It is not safe for concurrent
// use; each sampling run owns its own.
type RNG struct {
	src Source
}

// New returns an RNG backed by a Mersenne Twister seeded with seed. Two RNGs
// built from the same seed yield the same sequence.
func New(seed int64) *RNG {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return &RNG{src: mt}
}

// FromSource wraps an arbitrary Source.
func FromSource(src Source) *RNG {
	return &RNG{src: src}
}

// Uint64Inclusive returns a uniformly distributed number in [0, n].
func (r *RNG) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is a power of two (or n is MaxUint64), so masking is exact.
	case n&(n+1) == 0:
		return r.src.Uint64() & n

	// Too large for the modulo trick below; retry until in range.
	case n > math.MaxInt64:
		v := r.src.Uint64()
		for v > n {
			v = r.src.Uint64()
		}
		return v

	// Reject the biased tail of [0, MaxInt64] before reducing modulo n+1.
	default:
		maximum := uint64((1<<63)-1) - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Intn returns a uniformly distributed number in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	return int(r.Uint64Inclusive(uint64(n - 1)))
}

func (r *RNG) uint63() uint64 {
	return r.src.Uint64() & math.MaxInt64
}
