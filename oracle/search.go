package oracle

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// fwdSearch runs an early-terminated forward Dijkstra from a source over
// reduced costs, settling nodes one at a time via h. It implements the
// single shared stopping rule every oracle in this package relies on (see
// oracle/doc.go): stop the instant the frontier minimum reaches threshold
// (Accept, reduced costs stay nonnegative once repaired) or the instant
// target is settled below threshold (Reject, a negative cycle exists).
//
// fwdSearch only ever records nodes settled strictly below threshold in
// reached; those are exactly, and only, the nodes potential.Repair needs.
type fwdSearch[T weight.Real] struct {
	g         *graphcore.Graph[T]
	h         *potential.Potential[T]
	heap      *addrHeap[T]
	threshold T
	target    int
	inf       T

	reached []potential.ReachedNode[T]

	lastSettled     int
	lastSettledDist T
}

func newFwdSearch[T weight.Real](g *graphcore.Graph[T], h *potential.Potential[T], heap *addrHeap[T], source, target int, threshold, inf T) *fwdSearch[T] {
	heap.Reset()
	heap.Push(source, *new(T))
	return &fwdSearch[T]{g: g, h: h, heap: heap, threshold: threshold, target: target, inf: inf}
}

// stepOutcome tells the caller what the last step settled, if anything is
// final yet.
type stepOutcome int

const (
	stepContinue stepOutcome = iota
	stepAccept
	stepReject
	stepExhausted // heap ran dry without reaching threshold or target
)

// step pops the next frontier node (if any) and relaxes its out-edges.
// Returns stepAccept the instant the frontier provably cannot produce
// anything below threshold, stepReject the instant target is settled below
// threshold, stepExhausted when the frontier empties first (target
// unreachable from source, so no cycle), else stepContinue.
func (s *fwdSearch[T]) step() stepOutcome {
	if s.heap.Len() == 0 {
		return stepExhausted
	}
	v, d := s.heap.Pop()
	s.lastSettled, s.lastSettledDist = v, d
	if !weight.Less(d, s.threshold) {
		return stepAccept
	}
	if v == s.target {
		return stepReject
	}
	s.reached = append(s.reached, potential.ReachedNode[T]{Node: v, Dist: d})

	for _, e := range s.g.OutEdges(v) {
		w := s.g.Head(e)
		rw := s.h.Reduced(s.g, e)
		cand := weight.Add(d, rw)
		if cur := s.heap.Dist(w, s.inf); weight.Less(cand, cur) {
			s.heap.Push(w, cand)
		}
	}
	return stepContinue
}

// peek returns the current frontier minimum without popping, or inf if the
// heap is empty. Used by the bidirectional oracle to decide which side to
// advance next; the unidirectional oracle never needs it.
func (s *fwdSearch[T]) peek() T {
	if s.heap.Len() == 0 {
		return s.inf
	}
	// container/heap guarantees items[0] is the minimum.
	return s.heap.dist[s.heap.items[0]]
}

// settledDist reports v's forward distance if step has already settled or
// relaxed it this search, else ok is false.
func (s *fwdSearch[T]) settledDist(v int) (d T, ok bool) {
	if !s.heap.valid(v) {
		return *new(T), false
	}
	return s.heap.dist[v], true
}

// bwdSearch mirrors fwdSearch but grows backward from the edge's tail u
// along in-edges, so that settling a node x gives the shortest reduced-cost
// distance from x to u. The bidirectional oracle uses it only to detect
// Reject earlier (by settling v, or by meeting a forward-settled node); it
// never contributes to the reached set potential.Repair consumes, so its
// bookkeeping can stay simpler than fwdSearch's.
type bwdSearch[T weight.Real] struct {
	g      *graphcore.Graph[T]
	h      *potential.Potential[T]
	heap   *addrHeap[T]
	target int
	inf    T
}

func newBwdSearch[T weight.Real](g *graphcore.Graph[T], h *potential.Potential[T], heap *addrHeap[T], source, target int, inf T) *bwdSearch[T] {
	heap.Reset()
	heap.Push(source, *new(T))
	return &bwdSearch[T]{g: g, h: h, heap: heap, target: target, inf: inf}
}

// step mirrors fwdSearch.step but never compares against threshold itself;
// the caller (bidirectional oracle) interprets settling target and meeting
// points against threshold.
func (s *bwdSearch[T]) step() (node int, dist T, ok bool) {
	if s.heap.Len() == 0 {
		return 0, *new(T), false
	}
	v, d := s.heap.Pop()

	for _, e := range s.g.InEdges(v) {
		x := s.g.Tail(e)
		rw := s.h.Reduced(s.g, e)
		cand := weight.Add(d, rw)
		if cur := s.heap.Dist(x, s.inf); weight.Less(cand, cur) {
			s.heap.Push(x, cand)
		}
	}
	return v, d, true
}

func (s *bwdSearch[T]) peek() T {
	if s.heap.Len() == 0 {
		return s.inf
	}
	return s.heap.dist[s.heap.items[0]]
}

func (s *bwdSearch[T]) settledDist(v int) (d T, ok bool) {
	if !s.heap.valid(v) {
		return *new(T), false
	}
	return s.heap.dist[v], true
}
