package oracle

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// Unidirectional is the "d" oracle (spec §4.5): a single forward Dijkstra
// from the candidate edge's head, stopped the instant it can decide Accept
// or Reject. It is the simplest correct oracle in this package and the one
// Bidirectional's correctness is checked against.
type Unidirectional[T weight.Real] struct {
	heap *addrHeap[T]
	inf  T

	reached   []potential.ReachedNode[T]
	threshold T
}

// NewUnidirectional returns a Unidirectional oracle for an n-node graph
// whose weights never exceed wMax in magnitude; wMax only feeds
// weight.Infinity's sentinel construction for integer instantiations.
func NewUnidirectional[T weight.Real](n int, wMax T) *Unidirectional[T] {
	return &Unidirectional[T]{
		heap: newAddrHeap[T](n),
		inf:  weight.Infinity[T](wMax, n),
	}
}

func (o *Unidirectional[T]) Query(g *graphcore.Graph[T], h *potential.Potential[T], e, u, v int, wPrime T) Decision {
	threshold := weight.Sub(*new(T), weight.Add(wPrime, weight.Sub(h.Get(u), h.Get(v))))
	o.threshold = threshold
	o.reached = o.reached[:0]

	if u == v {
		if weight.Less(wPrime, *new(T)) {
			return Reject
		}
		return Accept
	}

	s := newFwdSearch(g, h, o.heap, v, u, threshold, o.inf)
	for {
		switch s.step() {
		case stepAccept, stepExhausted:
			o.reached = append(o.reached[:0], s.reached...)
			return Accept
		case stepReject:
			return Reject
		}
	}
}

func (o *Unidirectional[T]) Deltas() (reached []potential.ReachedNode[T], threshold T) {
	return o.reached, o.threshold
}
