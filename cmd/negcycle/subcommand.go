package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/lukasgeis/negative-edge-weights/generate"
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// buildGraph parses cfg.subArgs with a FlagSet scoped to cfg.subcommand and
// dispatches to the matching generate.* constructor (spec §6 subcommands).
func buildGraph[T weight.Real](cfg cliConfig, wMin, wMax T) (*graphcore.Graph[T], error) {
	root := weight.RootRNG(cfg.seed)
	rng := weight.Stream(root, weight.StreamGenerate)

	fs := flag.NewFlagSet(cfg.subcommand, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	switch cfg.subcommand {
	case "gnp":
		n := fs.Int("n", 0, "node count")
		d := fs.Float64("d", 0, "expected out-degree; translated to an edge probability p = d/(n-1)")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		p := 0.0
		if *n > 1 {
			p = *d / float64(*n-1)
		}
		return generate.GNP[T](*n, p, wMin, wMax, rng)

	case "rhg":
		n := fs.Int("n", 0, "node count")
		d := fs.Float64("d", 0, "target average degree")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		alpha, radius := rhgParams(*n, *d)
		return generate.RHG[T](*n, alpha, radius, wMin, wMax, rng)

	case "dsf":
		n := fs.Int("n", 0, "node count")
		d := fs.Float64("d", 1, "attachment smoothing parameter (delta_in = delta_out = d)")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		const third = 1.0 / 3.0
		return generate.DSF[T](*n, third, third, third, *d, *d, wMin, wMax, rng)

	case "complete":
		n := fs.Int("n", 0, "node count")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		return generate.Complete[T](*n, wMin, wMax, rng)

	case "cycle":
		n := fs.Int("n", 0, "node count")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		return generate.Cycle[T](*n, wMin, wMax, rng)

	case "file":
		path := fs.String("p", "", "edge-list path")
		if err := fs.Parse(cfg.subArgs); err != nil {
			return nil, err
		}
		f, err := os.Open(*path)
		if err != nil {
			return nil, fmt.Errorf("negcycle: opening -p %q: %w", *path, err)
		}
		defer f.Close()
		return generate.File[T](f, wMax)

	default:
		return nil, fmt.Errorf("%w: %q", errBadSubcommand, cfg.subcommand)
	}
}

// rhgParams derives a hyperbolic dispersion parameter and disk radius from
// a node count and target average degree, using the standard R ~ 2*ln(n/k)
// heuristic from the random-hyperbolic-graph literature so the CLI's -d
// flag reads as "average degree" like gnp's, not as a raw
// hyperbolic-geometry parameter a caller would have to already know.
func rhgParams(n int, avgDegree float64) (alpha, radius float64) {
	alpha = 1.0
	if avgDegree <= 0 || n <= 1 {
		return alpha, 1.0
	}
	radius = 2 * math.Log(float64(n)/avgDegree)
	if radius <= 0 {
		radius = 1.0
	}
	return alpha, radius
}
