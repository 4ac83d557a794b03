package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// ReadEdgeList parses the "file" source format spec §6 defines: one
// directed edge per line as "tail head", 0-indexed, whitespace-separated;
// lines starting with '#' (after leading whitespace is trimmed) are
// comments and blank lines are skipped; node count is inferred as
// max(tail,head)+1 across every edge. Every parsed edge is given weight
// WMax, matching InitMax's semantics for a freshly-read graph (the mcmc
// driver's own Init policy overwrites this before the first proposal in
// every case except a caller that skips mcmc.Run entirely, e.g. the
// pre-run --check pass).
func ReadEdgeList[T weight.Real](r io.Reader, wMax T) (*graphcore.Graph[T], error) {
	sc := bufio.NewScanner(r)
	var edges []graphcore.EdgeSpec[T]
	maxID := -1
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"tail head\", got %q", ErrMalformedLine, lineNo, line)
		}
		tail, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: tail %q: %v", ErrMalformedLine, lineNo, fields[0], err)
		}
		head, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: head %q: %v", ErrMalformedLine, lineNo, fields[1], err)
		}
		if tail < 0 || head < 0 {
			return nil, fmt.Errorf("%w: line %d: node ids must be non-negative", ErrMalformedLine, lineNo)
		}
		if tail > maxID {
			maxID = tail
		}
		if head > maxID {
			maxID = head
		}
		edges = append(edges, graphcore.EdgeSpec[T]{Tail: tail, Head: head, Weight: wMax})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("serialize: reading edge list: %w", err)
	}
	if maxID < 0 {
		return nil, ErrEmptyEdgeList
	}

	return graphcore.Build(maxID+1, edges)
}
