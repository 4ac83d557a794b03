package oracle

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// Bidirectional is the "bd" oracle (spec §4.5), the production default. It
// runs the same forward search Unidirectional does (and derives Accept /
// the reached set from it identically, so potential.Repair sees the same
// contract from every oracle), but grows a second search backward from the
// edge's tail purely to reach a Reject verdict sooner on graphs where the
// forward search alone would have to settle many nodes before the true
// negative cycle comes into view.
type Bidirectional[T weight.Real] struct {
	fheap, bheap *addrHeap[T]
	inf          T

	reached   []potential.ReachedNode[T]
	threshold T
}

func NewBidirectional[T weight.Real](n int, wMax T) *Bidirectional[T] {
	return &Bidirectional[T]{
		fheap: newAddrHeap[T](n),
		bheap: newAddrHeap[T](n),
		inf:   weight.Infinity[T](wMax, n),
	}
}

func (o *Bidirectional[T]) Query(g *graphcore.Graph[T], h *potential.Potential[T], e, u, v int, wPrime T) Decision {
	threshold := weight.Sub(*new(T), weight.Add(wPrime, weight.Sub(h.Get(u), h.Get(v))))
	o.threshold = threshold
	o.reached = o.reached[:0]

	if u == v {
		if weight.Less(wPrime, *new(T)) {
			return Reject
		}
		return Accept
	}

	fs := newFwdSearch(g, h, o.fheap, v, u, threshold, o.inf)
	bs := newBwdSearch(g, h, o.bheap, u, v, o.inf)

	for {
		fDone := fs.heap.Len() == 0
		bDone := bs.heap.Len() == 0
		if fDone && bDone {
			o.reached = append(o.reached[:0], fs.reached...)
			return Accept
		}

		// Advance whichever frontier is currently smaller; an empty side
		// never gets to "win" this comparison so the other side keeps
		// making progress alone once it exhausts.
		advanceForward := !fDone && (bDone || weight.Less(fs.peek(), bs.peek()) || fs.peek() == bs.peek())

		if advanceForward {
			switch fs.step() {
			case stepAccept, stepExhausted:
				o.reached = append(o.reached[:0], fs.reached...)
				return Accept
			case stepReject:
				return Reject
			}
			if d, ok := bs.settledDist(fs.lastSettled); ok {
				if full := weight.Add(fs.lastSettledDist, d); weight.Less(full, threshold) {
					return Reject
				}
			}
			continue
		}

		node, dist, ok := bs.step()
		if !ok {
			continue
		}
		if node == v && weight.Less(dist, threshold) {
			return Reject
		}
		if fd, ok := fs.settledDist(node); ok {
			if full := weight.Add(fd, dist); weight.Less(full, threshold) {
				return Reject
			}
		}
	}
}

func (o *Bidirectional[T]) Deltas() (reached []potential.ReachedNode[T], threshold T) {
	return o.reached, o.threshold
}
