package weight_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/weight"
)

func TestAddSubLess(t *testing.T) {
	require.Equal(t, int64(7), weight.Add(int64(3), int64(4)))
	require.Equal(t, int64(-1), weight.Sub(int64(3), int64(4)))
	require.True(t, weight.Less(int64(3), int64(4)))
	require.False(t, weight.Less(int64(4), int64(3)))

	require.InDelta(t, 7.5, weight.Add(3.5, 4.0), 1e-9)
}

func TestIsFloat(t *testing.T) {
	require.True(t, weight.IsFloat[float64]())
	require.True(t, weight.IsFloat[float32]())
	require.False(t, weight.IsFloat[int64]())
	require.False(t, weight.IsFloat[int32]())
}

func TestInfinityFloatIsTrueInfinity(t *testing.T) {
	inf := weight.Infinity[float64](10, 1000)
	require.True(t, math.IsInf(inf, 1))
	require.True(t, weight.Less(1e300, inf))
}

func TestInfinityIntExceedsAnyAccumulatedSum(t *testing.T) {
	const wMax, n = int64(10), 50
	inf := weight.Infinity[int64](wMax, n)
	require.True(t, weight.Less(wMax*int64(n), inf))
}

func TestSampleFloatWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v, err := weight.Sample[float64](rng, -1.0, 1.0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestSampleIntInclusiveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		v, err := weight.Sample[int64](rng, -2, 2)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(-2))
		require.LessOrEqual(t, v, int64(2))
		seen[v] = true
	}
	// With 2000 draws over a 5-value range, every value should appear.
	require.Len(t, seen, 5)
}

func TestSampleBadBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := weight.Sample[int64](rng, 5, 1)
	require.ErrorIs(t, err, weight.ErrBadBounds)
}

func TestStreamsAreIndependent(t *testing.T) {
	root1 := weight.RootRNG(123)
	a := weight.Stream(root1, weight.StreamEdgeSelect)
	b := weight.Stream(root1, weight.StreamWeightSample)
	require.NotEqual(t, a.Int63(), b.Int63())
}

func TestRootRNGZeroSeedIsDeterministic(t *testing.T) {
	r1 := weight.RootRNG(0)
	r2 := weight.RootRNG(0)
	require.Equal(t, r1.Int63(), r2.Int63())
}
