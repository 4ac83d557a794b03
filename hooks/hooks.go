package hooks

import "github.com/lukasgeis/negative-edge-weights/weight"

// Decision mirrors oracle.Decision without importing the oracle package,
// keeping hooks usable by anything that only needs to report proposal
// outcomes (oracle already imports potential and graphcore; hooks sits
// beside, not above, the oracle/mcmc stack).
type Decision int

const (
	Reject Decision = iota
	Accept
)

// Round describes one completed proposal: the edge considered, the weight
// it held and the weight it was offered, the verdict, and ReachedCount, the
// number of nodes whose potential the accepted proposal repaired (0 on
// Reject). Observers receive this after the driver has already applied (or
// discarded) the change.
type Round[T weight.Real] struct {
	Index        int64
	Edge         int
	Tail, Head   int
	OldWeight    T
	NewWeight    T
	Decision     Decision
	ReachedCount int
}

// Observer is notified once per completed round. Implementations must
// return quickly. Round is passed by value and holds no references into
// the driver's state.
type Observer[T weight.Real] interface {
	OnProposal(Round[T])
}

// NoOp is the default Observer; mcmc.Run uses it when the caller supplies
// none, so the hot loop always has exactly one indirect call to make
// rather than a nil check per round.
type NoOp[T weight.Real] struct{}

func (NoOp[T]) OnProposal(Round[T]) {}

// Multi fans a single Round out to several observers, in order. Useful for
// combining Counters with a caller-supplied logger or test spy.
type Multi[T weight.Real] []Observer[T]

func (m Multi[T]) OnProposal(r Round[T]) {
	for _, o := range m {
		o.OnProposal(r)
	}
}
