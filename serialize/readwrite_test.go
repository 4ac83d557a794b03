package serialize_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/serialize"
)

func TestReadEdgeListParsesBasicFile(t *testing.T) {
	src := "# a comment\n0 1\n1 2  \n\n2 0\n"
	g, err := serialize.ReadEdgeList[int64](strings.NewReader(src), 9)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 3, g.M())
	require.Equal(t, int64(9), g.Weight(0))
}

func TestReadEdgeListInfersNodeCountFromMaxID(t *testing.T) {
	g, err := serialize.ReadEdgeList[int64](strings.NewReader("0 5\n"), 1)
	require.NoError(t, err)
	require.Equal(t, 6, g.N())
}

func TestReadEdgeListRejectsMalformedLine(t *testing.T) {
	_, err := serialize.ReadEdgeList[int64](strings.NewReader("0 1 2\n"), 1)
	require.ErrorIs(t, err, serialize.ErrMalformedLine)
}

func TestReadEdgeListRejectsEmptyInput(t *testing.T) {
	_, err := serialize.ReadEdgeList[int64](strings.NewReader("# only comments\n"), 1)
	require.ErrorIs(t, err, serialize.ErrEmptyEdgeList)
}

func TestWriteEdgeListFormatsTailHeadWeight(t *testing.T) {
	g, err := graphcore.Build(3, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: -5},
		{Tail: 1, Head: 2, Weight: 7},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteEdgeList(&buf, g))
	require.Equal(t, "0 1 -5\n1 2 7\n", buf.String())
}

func TestWriteEdgeListFloatUsesShortestRoundTrip(t *testing.T) {
	g, err := graphcore.Build(2, []graphcore.EdgeSpec[float64]{
		{Tail: 0, Head: 1, Weight: 0.1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteEdgeList(&buf, g))
	require.Equal(t, "0 1 0.1\n", buf.String())
}
