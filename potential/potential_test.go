package potential_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
)

func edge(t *testing.T, tail, head int, w int64) *graphcore.Graph[int64] {
	t.Helper()
	g, err := graphcore.Build(2, []graphcore.EdgeSpec[int64]{{Tail: tail, Head: head, Weight: w}})
	require.NoError(t, err)
	return g
}

func TestNewIsZero(t *testing.T) {
	p := potential.New[int64](4)
	require.Equal(t, 4, p.Len())
	for v := 0; v < 4; v++ {
		require.Equal(t, int64(0), p.Get(v))
	}
}

func TestReducedMatchesRawWeightAtZeroPotential(t *testing.T) {
	g := edge(t, 0, 1, -5)
	p := potential.New[int64](2)
	require.Equal(t, int64(-5), p.Reduced(g, 0))
}

func TestReducedTracksPotentialShift(t *testing.T) {
	g := edge(t, 0, 1, 3)
	p := potential.New[int64](2)
	p.Set(0, 10)
	p.Set(1, 2)
	require.Equal(t, int64(3+10-2), p.Reduced(g, 0))
}

func TestRepairShiftsOnlyReachedNodes(t *testing.T) {
	p := potential.New[int64](3)
	p.Set(0, 5)
	p.Set(1, 5)
	p.Set(2, 5)

	reached := []potential.ReachedNode[int64]{
		{Node: 0, Dist: 0},
		{Node: 1, Dist: 4},
	}
	threshold := int64(6)
	p.Repair(reached, threshold)

	require.Equal(t, int64(5+0-6), p.Get(0))
	require.Equal(t, int64(5+4-6), p.Get(1))
	require.Equal(t, int64(5), p.Get(2)) // unreached, unchanged
}

func TestRenormalizeShiftsWithoutChangingReducedCosts(t *testing.T) {
	g := edge(t, 0, 1, 7)
	p := potential.New[int64](2)
	p.Set(0, 100)
	p.Set(1, 95)
	before := p.Reduced(g, 0)

	p.Renormalize()

	require.Equal(t, int64(0), p.Get(1))
	require.Equal(t, int64(5), p.Get(0))
	require.Equal(t, before, p.Reduced(g, 0))
}

func TestRenormalizeOnZeroLengthIsNoop(t *testing.T) {
	p := potential.New[int64](0)
	require.NotPanics(t, func() { p.Renormalize() })
}
