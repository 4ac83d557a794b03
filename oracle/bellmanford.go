package oracle

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// BellmanFord is the "bf" oracle (spec §4.5): the O(n*m) reference
// implementation, a classic relaxation-rounds Bellman-Ford (not the
// SPFA/queue variant) computing the full shortest reduced-cost distance
// from the candidate edge's head to every node, then comparing the
// distance it reaches the tail with against threshold exactly as the
// Dijkstra-family oracles do. Unlike them it has no settling order to
// exploit for early termination; it exists to cross-check Unidirectional
// and Bidirectional (spec §8 scenario on cross-oracle agreement), not to
// run on large graphs.
type BellmanFord[T weight.Real] struct {
	dist   []T
	inf    T
	reached   []potential.ReachedNode[T]
	threshold T
}

func NewBellmanFord[T weight.Real](n int, wMax T) *BellmanFord[T] {
	return &BellmanFord[T]{
		dist: make([]T, n),
		inf:  weight.Infinity[T](wMax, n),
	}
}

func (o *BellmanFord[T]) Query(g *graphcore.Graph[T], h *potential.Potential[T], e, u, v int, wPrime T) Decision {
	threshold := weight.Sub(*new(T), weight.Add(wPrime, weight.Sub(h.Get(u), h.Get(v))))
	o.threshold = threshold

	n := g.N()
	for i := 0; i < n; i++ {
		o.dist[i] = o.inf
	}
	o.dist[v] = *new(T)

	if u == v {
		o.reached = o.reached[:0]
		if weight.Less(wPrime, *new(T)) {
			return Reject
		}
		return Accept
	}

	for round := 0; round < n-1; round++ {
		changed := false
		for edgeID := 0; edgeID < g.M(); edgeID++ {
			x, y := g.Tail(edgeID), g.Head(edgeID)
			if o.dist[x] == o.inf {
				continue
			}
			rw := h.Reduced(g, edgeID)
			cand := weight.Add(o.dist[x], rw)
			if weight.Less(cand, o.dist[y]) {
				o.dist[y] = cand
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	o.reached = o.reached[:0]
	for x := 0; x < n; x++ {
		if o.dist[x] != o.inf && weight.Less(o.dist[x], threshold) {
			o.reached = append(o.reached, potential.ReachedNode[T]{Node: x, Dist: o.dist[x]})
		}
	}

	if o.dist[u] != o.inf && weight.Less(o.dist[u], threshold) {
		return Reject
	}
	return Accept
}

func (o *BellmanFord[T]) Deltas() (reached []potential.ReachedNode[T], threshold T) {
	return o.reached, o.threshold
}
