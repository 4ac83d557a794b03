package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/oracle"
	"github.com/lukasgeis/negative-edge-weights/potential"
)

// diamond builds 0->1->3 (cost 4) and 0->2->3 (cost 6), edge ids 0..3 in
// that order, plus a fifth edge 3->0 closing a cycle with weight 10.
func diamond(t *testing.T) *graphcore.Graph[int64] {
	t.Helper()
	g, err := graphcore.Build(4, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: 2},
		{Tail: 1, Head: 3, Weight: 2},
		{Tail: 0, Head: 2, Weight: 3},
		{Tail: 2, Head: 3, Weight: 3},
		{Tail: 3, Head: 0, Weight: 10},
	})
	require.NoError(t, err)
	return g
}

func allOracles(n int, wMax int64) map[string]oracle.Oracle[int64] {
	return map[string]oracle.Oracle[int64]{
		"uni":  oracle.NewUnidirectional(n, wMax),
		"bidi": oracle.NewBidirectional(n, wMax),
		"bf":   oracle.NewBellmanFord(n, wMax),
	}
}

func TestOraclesAgreeOnInfeasibleLowering(t *testing.T) {
	g := diamond(t)
	h := potential.New[int64](4)

	// Lowering edge 4 (3->0, currently 10) to -5 keeps the cycle
	// 0->1->3->0 at cost 2+2-5=-1 < 0: infeasible, must reject everywhere.
	for name, o := range allOracles(4, 100) {
		d := o.Query(g, h, 4, 3, 0, -5)
		require.Equal(t, oracle.Reject, d, "oracle %s", name)
	}
}

func TestOraclesAgreeOnFeasibleLowering(t *testing.T) {
	g := diamond(t)
	h := potential.New[int64](4)

	// Lowering edge 4 to -3 keeps every cycle through it nonnegative
	// (shortest 0->3 path costs 4, so -3+4=1 >= 0): feasible everywhere.
	for name, o := range allOracles(4, 100) {
		d := o.Query(g, h, 4, 3, 0, -3)
		require.Equal(t, oracle.Accept, d, "oracle %s", name)
	}
}

func TestOraclesAgreeOnUnreachableTail(t *testing.T) {
	g, err := graphcore.Build(3, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 1, Weight: 5},
		{Tail: 2, Head: 0, Weight: 5},
	})
	require.NoError(t, err)
	h := potential.New[int64](3)

	// Edge from node 2 to node 0; node 0 cannot reach node 2 at all, so no
	// cycle can ever form regardless of wPrime.
	for name, o := range allOracles(3, 100) {
		d := o.Query(g, h, 1, 2, 0, -1000)
		require.Equal(t, oracle.Accept, d, "oracle %s", name)
	}
}

func TestOraclesAgreeOnSelfLoop(t *testing.T) {
	g, err := graphcore.Build(1, []graphcore.EdgeSpec[int64]{
		{Tail: 0, Head: 0, Weight: 1},
	})
	require.NoError(t, err)
	h := potential.New[int64](1)

	for name, o := range allOracles(1, 100) {
		require.Equal(t, oracle.Reject, o.Query(g, h, 0, 0, 0, -1), "oracle %s", name)
		require.Equal(t, oracle.Accept, o.Query(g, h, 0, 0, 0, 0), "oracle %s", name)
	}
}

func TestDeltasMatchAfterAccept(t *testing.T) {
	g := diamond(t)
	h := potential.New[int64](4)

	o := oracle.NewUnidirectional(4, int64(100))
	d := o.Query(g, h, 4, 3, 0, -3)
	require.Equal(t, oracle.Accept, d)

	reached, threshold := o.Deltas()
	require.Equal(t, int64(3), threshold) // -(-3+0-0)
	for _, r := range reached {
		require.Less(t, r.Dist, threshold)
	}
}
