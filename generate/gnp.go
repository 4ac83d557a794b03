package generate

import (
	"fmt"
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const methodGNP = "GNP"

// GNP builds an Erdős–Rényi directed multigraph (spec §6 "gnp"): n nodes,
// each ordered pair (i,j), i != j, included independently with probability
// p, weighted uniformly from [wMin, wMax]. Trial order is i asc, j asc, so
// a fixed rng produces a fixed edge set (grounded on
// lvlath/builder.RandomSparse's directed branch, generalized from string
// vertex ids to the CSR node ids graphcore.Build expects).
func GNP[T weight.Real](n int, p float64, wMin, wMax T, rng *rand.Rand) (*graphcore.Graph[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGNP, n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodGNP, p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGNP, ErrNeedRandSource)
	}

	var edges []graphcore.EdgeSpec[T]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			w, err := weight.Sample(rng, wMin, wMax)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodGNP, err)
			}
			edges = append(edges, graphcore.EdgeSpec[T]{Tail: i, Head: j, Weight: w})
		}
	}
	return graphcore.Build(n, edges)
}
