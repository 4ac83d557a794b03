package serialize

import "errors"

var (
	// ErrMalformedLine indicates a non-comment, non-blank input line did
	// not parse as "tail head".
	ErrMalformedLine = errors.New("serialize: malformed edge-list line")

	// ErrEmptyEdgeList indicates an input contained no edges at all, so no
	// node count could be inferred (spec §7 configuration error).
	ErrEmptyEdgeList = errors.New("serialize: edge list has no edges")
)
