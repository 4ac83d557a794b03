package generate

import (
	"fmt"
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the n-node directed ring 0->1->...->(n-1)->0 (spec §6
// "cycle"), grounded on lvlath/builder.Cycle. A ring is the minimal graph
// on which the sampler's negative-cycle invariant is actually load-bearing
// from the first proposal onward, since every node sits on exactly one
// cycle.
func Cycle[T weight.Real](n int, wMin, wMax T, rng *rand.Rand) (*graphcore.Graph[T], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, ErrNeedRandSource)
	}

	edges := make([]graphcore.EdgeSpec[T], n)
	for i := 0; i < n; i++ {
		w, err := weight.Sample(rng, wMin, wMax)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
		edges[i] = graphcore.EdgeSpec[T]{Tail: i, Head: (i + 1) % n, Weight: w}
	}
	return graphcore.Build(n, edges)
}
