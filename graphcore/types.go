package graphcore

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyGraph indicates n == 0: the core requires at least one node.
	ErrEmptyGraph = errors.New("graphcore: graph has zero nodes")

	// ErrBadNodeCount indicates a negative node count was supplied.
	ErrBadNodeCount = errors.New("graphcore: node count must be non-negative")

	// ErrEdgeOutOfRange indicates an edge references a tail or head outside [0, n).
	ErrEdgeOutOfRange = errors.New("graphcore: edge endpoint out of range")

	// ErrNodeOutOfRange indicates a node id outside [0, n) was queried.
	ErrNodeOutOfRange = errors.New("graphcore: node id out of range")

	// ErrEdgeIDOutOfRange indicates an edge id outside [0, m) was queried.
	ErrEdgeIDOutOfRange = errors.New("graphcore: edge id out of range")
)

// EdgeSpec is one (tail, head, initial weight) triple as supplied to Build.
// Duplicates (parallel edges, and self-loops if Tail==Head) are permitted;
// the multigraph keeps every one as a distinct edge id equal to its index in
// the slice passed to Build, per spec §4.2's "stable edge ids preserve
// insertion order".
type EdgeSpec[T any] struct {
	Tail   int
	Head   int
	Weight T
}
