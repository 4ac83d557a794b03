package potential

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// ReachedNode is one node an oracle settled while answering a Query, paired
// with its shortest-path distance from the query's source under the reduced
// costs in force at query time. An oracle's Deltas returns these; Repair
// consumes them directly, so the two packages never need to import each
// other.
type ReachedNode[T weight.Real] struct {
	Node int
	Dist T
}

// Potential holds the node-indexed potential vector h (spec §3). h[v] is
// maintained so that every edge's reduced cost w(u,v)+h[u]-h[v] is
// nonnegative; New establishes it for any weighting with no negative edge,
// and every Repair call preserves it as long as the caller only repairs
// after an oracle Accept (spec §4.3 step 4).
type Potential[T weight.Real] struct {
	h []T
}

// New returns a zero-initialized potential over n nodes. With h==0 every
// reduced cost equals the raw weight, so this is a valid potential exactly
// when no edge weight is negative (as after each of mcmc's init policies).
func New[T weight.Real](n int) *Potential[T] {
	return &Potential[T]{h: make([]T, n)}
}

// Get returns h[v].
func (p *Potential[T]) Get(v int) T { return p.h[v] }

// Set overwrites h[v]. Exposed for initialization policies and
// Renormalize; ordinary per-proposal maintenance should go through Repair.
func (p *Potential[T]) Set(v int, val T) { p.h[v] = val }

// Len returns the number of nodes the potential is defined over.
func (p *Potential[T]) Len() int { return len(p.h) }

// Reduced computes edge e's reduced cost w(tail,head) + h[tail] - h[head]
// under the current potential.
func (p *Potential[T]) Reduced(g *graphcore.Graph[T], e int) T {
	u, v := g.Tail(e), g.Head(e)
	return weight.Sub(weight.Add(g.Weight(e), p.h[u]), p.h[v])
}

// Repair updates h after an accepted edge-weight lowering, given the nodes
// an oracle settled while deciding Accept and the threshold it compared
// their distances against (threshold = -(w'+h[u]-h[v]), computed from h
// before this call).
//
// For every reached node x, dist[x] is its shortest distance under the old
// reduced costs from the query's source, and dist[x] < threshold (the
// oracle's own accept condition). Setting h_new[x] = h[x] + dist[x] -
// threshold keeps every edge leaving a reached node nonnegative under the
// new weighting and leaves every edge between two unreached nodes unchanged,
// because both endpoints keep their old h. This is the corrected form of
// spec §4.3 step 4's update rule; see DESIGN.md for the derivation.
func (p *Potential[T]) Repair(reached []ReachedNode[T], threshold T) {
	for _, r := range reached {
		p.h[r.Node] = weight.Sub(weight.Add(p.h[r.Node], r.Dist), threshold)
	}
}

// Renormalize subtracts the minimum potential value from every entry,
// leaving every reduced cost unchanged (it is invariant under a uniform
// shift of h) while bounding unbounded drift on integer instantiations
// across long runs (spec §9 "Potential overflow").
func (p *Potential[T]) Renormalize() {
	if len(p.h) == 0 {
		return
	}
	min := p.h[0]
	for _, v := range p.h[1:] {
		if weight.Less(v, min) {
			min = v
		}
	}
	if min == *new(T) {
		return
	}
	for i := range p.h {
		p.h[i] = weight.Sub(p.h[i], min)
	}
}
