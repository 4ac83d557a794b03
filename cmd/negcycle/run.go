package main

import (
	"fmt"
	"math"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lukasgeis/negative-edge-weights/generate"
	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/hooks"
	"github.com/lukasgeis/negative-edge-weights/mcmc"
	"github.com/lukasgeis/negative-edge-weights/serialize"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// runTyped performs the whole lifecycle of one invocation monomorphized to
// T: build the graph, optionally restrict it to its largest SCC, configure
// and run the MCMC driver, report the result, and pick an exit code (spec
// §6 "Exit codes").
func runTyped[T weight.Real](cfg cliConfig, wMin, wMax T) (int, error) {
	g, err := buildGraph[T](cfg, wMin, wMax)
	if err != nil {
		return exitArgError, err
	}
	cfg.logger.Info("negcycle: graph built", "n", g.N(), "m", g.M(), "subcommand", cfg.subcommand)

	if cfg.scc {
		restricted, err := generate.LargestSCC[T](g)
		if err != nil {
			return exitArgError, err
		}
		g = restricted
		cfg.logger.Info("negcycle: restricted to largest SCC", "n", g.N(), "m", g.M())
	}

	if cfg.check && serialize.HasNegativeCycle[T](g) {
		return exitCheckFail, fmt.Errorf("negcycle: generated instance already has a negative cycle before any proposal")
	}

	init, err := parseInit(cfg.initName)
	if err != nil {
		return exitArgError, err
	}
	oracleKind, err := parseOracle(cfg.algoName)
	if err != nil {
		return exitArgError, err
	}

	opts := []mcmc.Option[T]{
		mcmc.WithInit[T](init),
		mcmc.WithOracle[T](oracleKind),
		mcmc.WithSeed[T](cfg.seed),
		mcmc.WithCheck[T](cfg.check),
	}

	var reg *prometheus.Registry
	if cfg.metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, mcmc.WithObserver[T](hooks.NewCounters[T](reg)))
	}

	mcfg, err := mcmc.New[T](wMin, wMax, roundsFor(cfg.roundsPerEdge, g.M()), opts...)
	if err != nil {
		return exitArgError, err
	}

	res, err := mcmc.Run[T](g, mcfg)
	if err != nil {
		return exitCheckFail, diagnosticError(err, cfg)
	}
	cfg.logger.Info("negcycle: run complete",
		"rounds", res.Rounds, "accepted", res.Accepted, "rejected", res.Rejected)

	if err := writeOutput(cfg, g); err != nil {
		return exitArgError, err
	}

	if cfg.metrics && reg != nil {
		if err := dumpMetrics(reg); err != nil {
			cfg.logger.Warn("negcycle: metrics dump failed", "error", err.Error())
		}
	}

	if cfg.check && serialize.HasNegativeCycle[T](g) {
		return exitCheckFail, fmt.Errorf("negcycle: post-run verifier found a negative cycle; this is a driver bug, not a configuration error")
	}

	return exitOK, nil
}

// roundsFor converts the CLI's rounds-per-edge figure into mcmc.Config's
// Rounds convention: a non-negative rounds-per-edge multiplies out to
// floor(k*m) absolute proposals (spec §4.3 "perform floor(k*m) independent
// proposals"), while a negative value selects sweep mode and is carried
// through as the (rounded, at-least-one) sweep-pass count (spec §4.4
// "Round budget").
func roundsFor(roundsPerEdge float64, m int) int64 {
	if roundsPerEdge >= 0 {
		return int64(math.Floor(roundsPerEdge * float64(m)))
	}
	sweeps := int64(math.Round(roundsPerEdge))
	if sweeps >= 0 {
		sweeps = -1
	}
	return sweeps
}

func parseInit(s string) (mcmc.InitPolicy, error) {
	switch s {
	case "m":
		return mcmc.InitMax, nil
	case "z":
		return mcmc.InitZero, nil
	case "u":
		return mcmc.InitUniform, nil
	default:
		return 0, fmt.Errorf("%w: -i %q", errBadInit, s)
	}
}

func parseOracle(s string) (mcmc.OracleKind, error) {
	switch s {
	case "bd":
		return mcmc.OracleBidirectional, nil
	case "d":
		return mcmc.OracleUnidirectional, nil
	case "bf":
		return mcmc.OracleBellmanFord, nil
	default:
		return 0, fmt.Errorf("%w: -a %q", errBadAlgo, s)
	}
}

// writeOutput serializes g as an edge list to -o's path, or to standard
// error when -o was left empty (spec §6 "-o <output-path>... default:
// write to standard error").
func writeOutput[T weight.Real](cfg cliConfig, g *graphcore.Graph[T]) error {
	if cfg.output == "" {
		return serialize.WriteEdgeList[T](os.Stderr, g)
	}
	f, err := os.Create(cfg.output)
	if err != nil {
		return fmt.Errorf("negcycle: creating -o %q: %w", cfg.output, err)
	}
	defer f.Close()
	return serialize.WriteEdgeList[T](f, g)
}

// diagnosticError enriches a failed Run (almost always an *mcmc.ErrCheckMismatch,
// since every other failure mode is rejected before Run is called) with the
// run identifiers an operator needs to reproduce it deterministically
// (spec §7 "Failure semantics").
func diagnosticError(err error, cfg cliConfig) error {
	return fmt.Errorf("run_id=%s seed=%d oracle=%s: %w", cfg.runID, cfg.seed, cfg.algoName, err)
}

// dumpMetrics writes a one-shot dump of reg's gathered families to
// stderr. The CLI is a one-shot process, not a server, so there is no
// /metrics endpoint to scrape (spec §9 "Metrics dump, not a server");
// each family's generated String() stands in for full exposition-format
// encoding, which only matters to a real scraper.
func dumpMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("negcycle: gathering metrics: %w", err)
	}
	for _, mf := range families {
		fmt.Fprintln(os.Stderr, mf.String())
	}
	return nil
}
