package generate

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const methodRHG = "RHG"

// RHG builds a random hyperbolic graph (spec §6 "rhg"): n nodes placed in
// the hyperbolic disk of radius R, each node i given a radius r_i drawn
// from the density alpha*sinh(alpha*r)/(cosh(alpha*R)-1) on [0,R] via
// inverse-CDF sampling and an angle theta_i ~ Uniform(0,2*pi) via
// gonum/stat/distuv (this package's one genuinely continuous distribution
// need, unlike weight.Sample's bounded-interval draws). An edge i->j is
// added whenever their hyperbolic distance is below R; direction is
// assigned by an independent coin flip so the result is a directed
// multigraph like every other generator here.
func RHG[T weight.Real](n int, alpha, radius float64, wMin, wMax T, rng *rand.Rand) (*graphcore.Graph[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRHG, n, ErrTooFewNodes)
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("%s: alpha=%g must be positive: %w", methodRHG, alpha, ErrInvalidDegree)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRHG, ErrNeedRandSource)
	}

	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rng}
	u := distuv.Uniform{Min: 0, Max: 1, Src: rng}

	r := make([]float64, n)
	theta := make([]float64, n)
	cosRadius := math.Cosh(alpha * radius)
	for i := 0; i < n; i++ {
		r[i] = math.Acosh(1+(cosRadius-1)*u.Rand()) / alpha
		theta[i] = angle.Rand()
	}

	var edges []graphcore.EdgeSpec[T]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := hyperbolicDistance(r[i], theta[i], r[j], theta[j])
			if d >= radius {
				continue
			}
			w, err := weight.Sample(rng, wMin, wMax)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodRHG, err)
			}
			tail, head := i, j
			if rng.Intn(2) == 1 {
				tail, head = j, i
			}
			edges = append(edges, graphcore.EdgeSpec[T]{Tail: tail, Head: head, Weight: w})
		}
	}
	return graphcore.Build(n, edges)
}

// hyperbolicDistance is the standard hyperbolic law of cosines for two
// points given in native (radius, angle) polar coordinates.
func hyperbolicDistance(r1, theta1, r2, theta2 float64) float64 {
	cosh := math.Cosh(r1)*math.Cosh(r2) - math.Sinh(r1)*math.Sinh(r2)*math.Cos(theta1-theta2)
	if cosh < 1 {
		cosh = 1 // guard against floating-point drift below the domain of Acosh
	}
	return math.Acosh(cosh)
}
