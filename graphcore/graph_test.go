package graphcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
)

func triangle(t *testing.T) *graphcore.Graph[int64] {
	t.Helper()
	g, err := graphcore.Build(3, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 2},
		{Tail: 2, Head: 0, Weight: 3},
		{Tail: 0, Head: 1, Weight: 4}, // parallel edge, distinct id
	})
	require.NoError(t, err)
	return g
}

func TestBuildBasics(t *testing.T) {
	g := triangle(t)
	require.Equal(t, 3, g.N())
	require.Equal(t, 4, g.M())
	require.Equal(t, 0, g.Tail(0))
	require.Equal(t, 1, g.Head(0))
	require.Equal(t, int64(4), g.Weight(3))
}

func TestOutInAdjacency(t *testing.T) {
	g := triangle(t)
	require.ElementsMatch(t, []int{0, 3}, g.OutEdges(0))
	require.ElementsMatch(t, []int{1}, g.OutEdges(1))
	require.ElementsMatch(t, []int{2}, g.OutEdges(2))

	require.ElementsMatch(t, []int{2}, g.InEdges(0))
	require.ElementsMatch(t, []int{0, 3}, g.InEdges(1))
	require.ElementsMatch(t, []int{1}, g.InEdges(2))

	require.Equal(t, 2, g.OutDegree(0))
	require.Equal(t, 1, g.InDegree(2))
}

func TestSetWeightMutatesInPlace(t *testing.T) {
	g := triangle(t)
	g.SetWeight(1, -5)
	require.Equal(t, int64(-5), g.Weight(1))
}

func TestBuildRejectsEmptyGraph(t *testing.T) {
	_, err := graphcore.Build[int64](0, nil)
	require.ErrorIs(t, err, graphcore.ErrEmptyGraph)
}

func TestBuildRejectsNegativeNodeCount(t *testing.T) {
	_, err := graphcore.Build[int64](-1, nil)
	require.ErrorIs(t, err, graphcore.ErrBadNodeCount)
}

func TestBuildRejectsOutOfRangeEdge(t *testing.T) {
	_, err := graphcore.Build(2, []graphcore.EdgeSpec[int64]{{Tail: 0, Head: 5, Weight: 1}})
	require.ErrorIs(t, err, graphcore.ErrEdgeOutOfRange)
}

func TestStableInsertionOrderWithinGroup(t *testing.T) {
	g, err := graphcore.Build(2, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: 10},
		{Tail: 0, Head: 1, Weight: 20},
		{Tail: 0, Head: 1, Weight: 30},
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, g.OutEdges(0))
}
