package oracle

import (
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// Decision is the oracle's verdict for a single tentative edge-weight
// lowering.
type Decision int

const (
	// Reject means committing the tentative weight would create a
	// negative-weight directed cycle.
	Reject Decision = iota
	// Accept means the tentative weight is feasible.
	Accept
)

func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject"
}

// Oracle answers "would lowering edge e=(u,v) to w' create a negative
// cycle?" against graph g under potential h, and exposes the settled-node
// set needed to repair h on acceptance.
//
// Query and Deltas are not safe for concurrent use; an Oracle owns private
// scratch reused across calls (spec §5: the core is strictly
// single-threaded, so this is never a concern in practice).
type Oracle[T weight.Real] interface {
	// Query decides whether lowering edge e (tail u, head v) to w' is
	// feasible. u, v must equal g.Tail(e), g.Head(e).
	Query(g *graphcore.Graph[T], h *potential.Potential[T], e, u, v int, wPrime T) Decision

	// Deltas returns the nodes settled by the most recent Query call and the
	// threshold used to decide it (threshold = -(w'+h[u]-h[v]) computed with
	// the h passed to that Query). Only meaningful immediately after a Query
	// that returned Accept; callers must not call Deltas after Reject.
	Deltas() (reached []potential.ReachedNode[T], threshold T)
}
