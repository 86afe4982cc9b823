package cyclic

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvertedRange(t *testing.T) {
	_, err := New(0, 5, 4)
	require.ErrorIs(t, err, ErrInvalidRange)

	require.Panics(t, func() { Span(-1) })
}

func TestReduce(t *testing.T) {
	c, err := New(3, 2, 5)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"in range", 4, 4},
		{"at min", 2, 2},
		{"at max", 5, 5},
		{"one above max", 6, 2},
		{"two cycles above", 2 + 4*2 + 1, 3},
		{"one below min", 1, 5},
		{"whole cycle below", 2 - 4, 2},
		{"far below", -7, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Reduce(tt.in))
		})
	}
}

func TestConstructorsReduceValue(t *testing.T) {
	assert.Equal(t, 0, Span(4).Value())
	assert.Equal(t, 2, At(7, 4).Value())

	c, err := New(uint8(0), 10, 20)
	require.NoError(t, err)
	// 0 sits ten steps below min, one short of a whole cycle.
	assert.Equal(t, uint8(11), c.Value())
}

func TestUnsignedDecrementPastZero(t *testing.T) {
	c := Span(uint(4))
	c.Dec()
	assert.Equal(t, uint(4), c.Value())
	c.Dec()
	assert.Equal(t, uint(3), c.Value())

	z := Span(uint64(0))
	z.Dec()
	assert.Equal(t, uint64(0), z.Value())
}

func TestIncrementWraps(t *testing.T) {
	c := At(3, 4)
	assert.Equal(t, 4, c.Inc().Value())
	assert.Equal(t, 0, c.Inc().Value())

	prev := c.PostInc()
	assert.Equal(t, 0, prev.Value())
	assert.Equal(t, 1, c.Value())

	prev = c.PostDec()
	assert.Equal(t, 1, prev.Value())
	assert.Equal(t, 0, c.Value())
}

func TestAddSubDoNotMutateReceiver(t *testing.T) {
	c := At(1, 4)
	assert.Equal(t, 3, c.Add(7).Value())
	assert.Equal(t, 0, c.Sub(6).Value())
	assert.Equal(t, 1, c.Value())

	c.Advance(-2)
	assert.Equal(t, 4, c.Value())
	c.Retreat(-2)
	assert.Equal(t, 1, c.Value())
}

func TestSmallTypesAtLimits(t *testing.T) {
	full, err := New(int8(127), math.MinInt8, math.MaxInt8)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), full.Inc().Value())
	assert.Equal(t, int8(127), full.Dec().Value())
	assert.Equal(t, int8(-128+99), full.Add(100).Value())

	u := At(uint8(250), 255)
	assert.Equal(t, uint8(4), u.Add(10).Value())
	assert.Equal(t, uint8(240), u.Sub(10).Value())

	big := At(uint64(math.MaxUint64), math.MaxUint64)
	assert.Equal(t, uint64(0), big.Inc().Value())
	assert.Equal(t, uint64(math.MaxUint64), big.Dec().Value())
	assert.Equal(t, uint64(math.MaxUint64-5), big.Sub(5).Value())
}

func TestSetBounds(t *testing.T) {
	c := At(9, 9)
	require.NoError(t, c.SetMax(6))
	assert.Equal(t, 2, c.Value())

	require.NoError(t, c.SetMin(4))
	assert.Equal(t, 5, c.Value())
	assert.Equal(t, 2, c.Difference())

	require.ErrorIs(t, c.SetMin(7), ErrInvalidRange)
	require.ErrorIs(t, c.SetMax(3), ErrInvalidRange)
	assert.Equal(t, 4, c.Min())
	assert.Equal(t, 6, c.Max())

	c.Set(13)
	assert.Equal(t, 4, c.Value())
	c.Advance(1)
	c.Reset()
	assert.Equal(t, 4, c.Value())
}

func TestCompareUsesRelativePosition(t *testing.T) {
	a, err := New(12, 10, 20)
	require.NoError(t, err)
	b := At(2, 5)

	assert.Zero(t, a.Compare(b))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))

	b.Inc()
	assert.True(t, a.Less(b))
	assert.Equal(t, 1, b.Compare(a))
}

// Shifting by any k must agree with plain modular arithmetic on the offset.
func TestShiftMatchesModularWindow(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		lo := rng.IntN(50) - 25
		span := rng.IntN(40) + 1
		start := rng.IntN(span)
		k := rng.IntN(10_000) - 5_000

		c, err := New(lo+start, lo, lo+span-1)
		require.NoError(t, err)

		wantBack := ((start-k)%span + span) % span
		wantFwd := ((start+k)%span + span) % span
		require.Equal(t, lo+wantBack, c.Sub(k).Value(), "lo=%d span=%d start=%d k=%d", lo, span, start, k)
		require.Equal(t, lo+wantFwd, c.Add(k).Value(), "lo=%d span=%d start=%d k=%d", lo, span, start, k)

		u := At(uint(start), uint(span-1))
		if k >= 0 {
			require.Equal(t, uint(wantBack), u.Sub(uint(k)).Value())
		}
	}
}
