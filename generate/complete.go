package generate

import (
	"fmt"
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const methodComplete = "Complete"

// Complete builds the complete directed graph on n nodes: every ordered
// pair (i,j), i != j, present exactly once (spec §6 "complete"), weighted
// uniformly from [wMin, wMax].
func Complete[T weight.Real](n int, wMin, wMax T, rng *rand.Rand) (*graphcore.Graph[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodComplete, n, ErrTooFewNodes)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, ErrNeedRandSource)
	}

	edges := make([]graphcore.EdgeSpec[T], 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w, err := weight.Sample(rng, wMin, wMax)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
			edges = append(edges, graphcore.EdgeSpec[T]{Tail: i, Head: j, Weight: w})
		}
	}
	return graphcore.Build(n, edges)
}
