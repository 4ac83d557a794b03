package generate_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/generate"
	"github.com/lukasgeis/negative-edge-weights/graphcore"
)

func TestGNPRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := generate.GNP[int64](20, 0.3, -5, 5, rng)
	require.NoError(t, err)
	require.Equal(t, 20, g.N())
	for e := 0; e < g.M(); e++ {
		require.GreaterOrEqual(t, g.Weight(e), int64(-5))
		require.LessOrEqual(t, g.Weight(e), int64(5))
	}
}

func TestCompleteHasEveryOrderedPair(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := generate.Complete[int64](4, -1, 1, rng)
	require.NoError(t, err)
	require.Equal(t, 4*3, g.M())
}

func TestCycleRejectsTooFewNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := generate.Cycle[int64](2, -1, 1, rng)
	require.ErrorIs(t, err, generate.ErrTooFewNodes)
}

func TestDSFRejectsBadProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := generate.DSF[int64](10, 0.5, 0.5, 0.5, 1, 1, -1, 1, rng)
	require.ErrorIs(t, err, generate.ErrInvalidProbability)
}

func TestDSFRejectsNonPositiveDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := generate.DSF[int64](10, 1.0/3, 1.0/3, 1.0/3, 0, 1, -1, 1, rng)
	require.ErrorIs(t, err, generate.ErrInvalidDegree)
}

func TestRHGRejectsNonPositiveAlpha(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := generate.RHG[int64](10, 0, 5, -1, 1, rng)
	require.ErrorIs(t, err, generate.ErrInvalidDegree)
}

func TestFileReadsEdgeList(t *testing.T) {
	g, err := generate.File[int64](strings.NewReader("0 1\n1 2\n2 0\n"), 9)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 3, g.M())
}

func TestLargestSCCDropsDisconnectedNodes(t *testing.T) {
	// 0->1->2->0 is a 3-cycle SCC; node 3 only receives an edge from 2 and
	// has no way back in, so it is its own singleton SCC and must be
	// dropped.
	g, err := graphcore.Build(4, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 2, Head: 0, Weight: 1},
		{Tail: 2, Head: 3, Weight: 1},
	})
	require.NoError(t, err)

	restricted, err := generate.LargestSCC(g)
	require.NoError(t, err)
	require.Equal(t, 3, restricted.N())
	require.Equal(t, 3, restricted.M())
}
