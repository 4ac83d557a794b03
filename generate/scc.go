package generate

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// LargestSCC restricts g to its largest strongly connected component,
// renumbering surviving nodes 0..k-1 in their original relative order and
// keeping every edge whose endpoints both survive (spec §9 "SCC
// restriction": a generator-side concern, run before the graph reaches the
// CORE, never inside mcmc itself).
//
// Tarjan's algorithm itself is not reimplemented here: the topology is
// handed to gonum.org/v1/gonum/graph/{simple,topo}, the pack's own
// graph-algorithms library, for exactly the SCC decomposition it already
// ships (topo.TarjanSCC), rather than hand-rolling it a second time.
func LargestSCC[T weight.Real](g *graphcore.Graph[T]) (*graphcore.Graph[T], error) {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.N(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for e := 0; e < g.M(); e++ {
		u, v := g.Tail(e), g.Head(e)
		if u == v {
			continue // gonum's simple.DirectedGraph rejects self-loop edges
		}
		if dg.HasEdgeFromTo(simple.Node(u), simple.Node(v)) {
			continue // topology only; parallel edges don't change SCC membership
		}
		dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
	}

	components := topo.TarjanSCC(dg)
	largest := components[0]
	for _, c := range components[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}

	keep := make(map[int]int, len(largest)) // old node id -> new node id
	oldIDs := make([]int, 0, len(largest))
	for _, n := range largest {
		oldIDs = append(oldIDs, int(n.ID()))
	}
	sort.Ints(oldIDs)
	for newID, oldID := range oldIDs {
		keep[oldID] = newID
	}

	var edges []graphcore.EdgeSpec[T]
	for e := 0; e < g.M(); e++ {
		u, v := g.Tail(e), g.Head(e)
		nu, uok := keep[u]
		nv, vok := keep[v]
		if uok && vok {
			edges = append(edges, graphcore.EdgeSpec[T]{Tail: nu, Head: nv, Weight: g.Weight(e)})
		}
	}

	return graphcore.Build(len(oldIDs), edges)
}
