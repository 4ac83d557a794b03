package serialize

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// HasNegativeCycle runs classic Bellman-Ford relaxation (n-1 rounds, then
// one more to detect an outstanding relaxation) over g's current weights
// and reports whether a negative cycle exists, reachable from any node.
// Unlike oracle.BellmanFord this checks the whole graph from scratch
// against raw weights, not a single candidate edge against reduced costs;
// it is the ground truth the package's and the CLI's --check flag compare
// against (spec §7 "Failure semantics").
func HasNegativeCycle[T weight.Real](g *graphcore.Graph[T]) bool {
	n := g.N()
	dist := make([]T, n) // zero value for every node: a virtual source with a zero-cost edge to each node, so unreachable nodes cannot hide a cycle from this check
	touched := make([]bool, n)
	for i := range touched {
		touched[i] = true
	}

	for round := 0; round < n-1; round++ {
		changed := false
		for e := 0; e < g.M(); e++ {
			u, v, w := g.Tail(e), g.Head(e), g.Weight(e)
			if !touched[u] {
				continue
			}
			cand := weight.Add(dist[u], w)
			if weight.Less(cand, dist[v]) {
				dist[v] = cand
				touched[v] = true
				changed = true
			}
		}
		if !changed {
			return false
		}
	}

	for e := 0; e < g.M(); e++ {
		u, v, w := g.Tail(e), g.Head(e), g.Weight(e)
		if !touched[u] {
			continue
		}
		if weight.Less(weight.Add(dist[u], w), dist[v]) {
			return true
		}
	}
	return false
}
