package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed values, wrapping around.
type sequence struct {
	values []uint64
	next   int
}

func (s *sequence) Uint64() uint64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestNew_Deterministic(t *testing.T) {
	a := New(12)
	b := New(12)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64Inclusive(1000), b.Uint64Inclusive(1000))
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 32; i++ {
		if a.Uint64Inclusive(math.MaxUint64) == b.Uint64Inclusive(math.MaxUint64) {
			same++
		}
	}
	assert.Less(t, same, 32)
}

func TestUint64Inclusive_Bounds(t *testing.T) {
	r := New(7)
	for _, n := range []uint64{0, 1, 2, 3, 5, 7, 24, 1000, 1 << 40, math.MaxInt64 + 10, math.MaxUint64} {
		for i := 0; i < 200; i++ {
			require.LessOrEqual(t, r.Uint64Inclusive(n), n, "n=%d", n)
		}
	}
}

func TestUint64Inclusive_CoversRange(t *testing.T) {
	r := New(3)
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		seen[r.Uint64Inclusive(24)] = true
	}
	assert.Len(t, seen, 25)
}

func TestUint64Inclusive_PowerOfTwoMasks(t *testing.T) {
	r := FromSource(&sequence{values: []uint64{0xFF}})
	assert.Equal(t, uint64(7), r.Uint64Inclusive(7))
}

func TestUint64Inclusive_RejectsBiasedTail(t *testing.T) {
	// The first value is above the largest unbiased multiple of 3 and must be
	// redrawn; the second reduces to 4 % 3.
	r := FromSource(&sequence{values: []uint64{math.MaxInt64, 4}})
	assert.Equal(t, uint64(1), r.Uint64Inclusive(2))
}

func TestUint64Inclusive_LargeRangeRetries(t *testing.T) {
	n := uint64(math.MaxInt64) + 5
	r := FromSource(&sequence{values: []uint64{math.MaxUint64, 9}})
	assert.Equal(t, uint64(9), r.Uint64Inclusive(n))
}

func TestIntn(t *testing.T) {
	r := New(5)
	for i := 0; i < 100; i++ {
		v := r.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
	assert.Equal(t, 0, r.Intn(1))
	assert.Panics(t, func() { r.Intn(0) })
}
