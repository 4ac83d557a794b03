package oracle

import (
	"container/heap"

	"github.com/lukasgeis/negative-edge-weights/weight"
)

// addrHeap is a binary min-heap over node ids with an auxiliary pos[] table
// giving each node's current slot, so Push can decrease a key via heap.Fix
// instead of pushing a stale duplicate entry (see oracle/doc.go). gen tags
// every node with the epoch it was last touched in, so Reset is O(1)
// amortized: stale gen values are treated as "not in heap, distance
// +Infinity" without zeroing the underlying arrays.
type addrHeap[T weight.Real] struct {
	items []int // node ids, heap-ordered by dist
	pos   []int // node -> index in items, or -1 if absent
	dist  []T
	gen   []uint32
	epoch uint32
}

const notInHeap = -1

func newAddrHeap[T weight.Real](n int) *addrHeap[T] {
	h := &addrHeap[T]{
		items: make([]int, 0, n),
		pos:   make([]int, n),
		dist:  make([]T, n),
		gen:   make([]uint32, n),
	}
	for i := range h.pos {
		h.pos[i] = notInHeap
	}
	return h
}

// Reset clears the heap for a new query in O(1) by bumping the epoch; any
// node whose gen is stale reads back as absent with distance Infinity.
func (h *addrHeap[T]) Reset() {
	h.items = h.items[:0]
	h.epoch++
	if h.epoch == 0 { // wrapped after 2^32 queries, fall back to a real clear
		for i := range h.pos {
			h.pos[i] = notInHeap
			h.gen[i] = 0
		}
		h.epoch = 1
	}
}

func (h *addrHeap[T]) valid(v int) bool { return h.gen[v] == h.epoch }

// Dist returns v's current tentative distance, or inf if v has not been
// touched this epoch.
func (h *addrHeap[T]) Dist(v int, inf T) T {
	if !h.valid(v) {
		return inf
	}
	return h.dist[v]
}

// InHeap reports whether v currently occupies a heap slot (as opposed to
// having been popped already).
func (h *addrHeap[T]) InHeap(v int) bool {
	return h.valid(v) && h.pos[v] != notInHeap
}

// Push inserts v with distance d, or decreases v's key to d if already
// present with a larger distance. First touch of v this epoch always
// inserts.
func (h *addrHeap[T]) Push(v int, d T) {
	if h.valid(v) && h.pos[v] != notInHeap {
		if weight.Less(d, h.dist[v]) {
			h.dist[v] = d
			heap.Fix((*heapAdapter[T])(h), h.pos[v])
		}
		return
	}
	h.gen[v] = h.epoch
	h.dist[v] = d
	heap.Push((*heapAdapter[T])(h), v)
}

// Pop removes and returns the node with the smallest current distance.
func (h *addrHeap[T]) Pop() (v int, d T) {
	top := heap.Pop((*heapAdapter[T])(h)).(int)
	return top, h.dist[top]
}

func (h *addrHeap[T]) Len() int { return len(h.items) }

// heapAdapter implements container/heap.Interface over addrHeap without
// exposing Push/Pop's any-typed signature on the public type.
type heapAdapter[T weight.Real] addrHeap[T]

func (a *heapAdapter[T]) Len() int { return len(a.items) }

func (a *heapAdapter[T]) Less(i, j int) bool {
	return weight.Less(a.dist[a.items[i]], a.dist[a.items[j]])
}

func (a *heapAdapter[T]) Swap(i, j int) {
	a.items[i], a.items[j] = a.items[j], a.items[i]
	a.pos[a.items[i]] = i
	a.pos[a.items[j]] = j
}

func (a *heapAdapter[T]) Push(x any) {
	v := x.(int)
	a.pos[v] = len(a.items)
	a.items = append(a.items, v)
}

func (a *heapAdapter[T]) Pop() any {
	n := len(a.items)
	v := a.items[n-1]
	a.items = a.items[:n-1]
	a.pos[v] = notInHeap
	return v
}
