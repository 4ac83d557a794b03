package generate

import (
	"fmt"
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const methodDSF = "DSF"

// DSF builds a directed scale-free graph by the Bollobás-Riordan-Spencer-
// Tusnády preferential-attachment process (spec §6 "dsf"): starting from a
// single node, steps repeat until the graph has n nodes, and at each step
// one of three moves fires — alpha (new node -> existing, chosen by
// in-degree), beta (existing -> existing, tail by out-degree, head by
// in-degree), gamma (existing -> new node, chosen by out-degree) — with
// deltaIn/deltaOut added to every node's in/out-degree before it is used
// as attachment weight, the standard smoothing that keeps early low-degree
// nodes reachable. alpha+beta+gamma must sum to 1.
func DSF[T weight.Real](n int, alpha, beta, gamma, deltaIn, deltaOut float64, wMin, wMax T, rng *rand.Rand) (*graphcore.Graph[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDSF, n, ErrTooFewNodes)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDSF, ErrNeedRandSource)
	}
	const eps = 1e-9
	if alpha < 0 || beta < 0 || gamma < 0 || abs(alpha+beta+gamma-1) > eps {
		return nil, fmt.Errorf("%s: alpha+beta+gamma must equal 1, got %g+%g+%g: %w", methodDSF, alpha, beta, gamma, ErrInvalidProbability)
	}
	if deltaIn <= 0 || deltaOut <= 0 {
		return nil, fmt.Errorf("%s: deltaIn=%g deltaOut=%g must be positive: %w", methodDSF, deltaIn, deltaOut, ErrInvalidDegree)
	}

	inDeg := make([]float64, 0, n)
	outDeg := make([]float64, 0, n)
	addNode := func() int {
		inDeg = append(inDeg, 0)
		outDeg = append(outDeg, 0)
		return len(inDeg) - 1
	}

	// Seed with a single node so weighted choice always has a nonzero pool.
	addNode()

	var edges []graphcore.EdgeSpec[T]
	addEdge := func(tail, head int) error {
		w, err := weight.Sample(rng, wMin, wMax)
		if err != nil {
			return err
		}
		edges = append(edges, graphcore.EdgeSpec[T]{Tail: tail, Head: head, Weight: w})
		outDeg[tail]++
		inDeg[head]++
		return nil
	}

	weightedPick := func(deg []float64, delta float64) int {
		total := 0.0
		for _, d := range deg {
			total += d + delta
		}
		target := rng.Float64() * total
		acc := 0.0
		for i, d := range deg {
			acc += d + delta
			if target < acc {
				return i
			}
		}
		return len(deg) - 1
	}

	for len(inDeg) < n {
		roll := rng.Float64()
		switch {
		case roll < alpha:
			head := weightedPick(inDeg, deltaIn)
			tail := addNode()
			if err := addEdge(tail, head); err != nil {
				return nil, fmt.Errorf("%s: %w", methodDSF, err)
			}
		case roll < alpha+beta:
			tail := weightedPick(outDeg, deltaOut)
			head := weightedPick(inDeg, deltaIn)
			if err := addEdge(tail, head); err != nil {
				return nil, fmt.Errorf("%s: %w", methodDSF, err)
			}
		default:
			tail := weightedPick(outDeg, deltaOut)
			head := addNode()
			if err := addEdge(tail, head); err != nil {
				return nil, fmt.Errorf("%s: %w", methodDSF, err)
			}
		}
	}

	return graphcore.Build(len(inDeg), edges)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
