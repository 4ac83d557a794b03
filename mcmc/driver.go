package mcmc

import (
	"fmt"
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/hooks"
	"github.com/lukasgeis/negative-edge-weights/oracle"
	"github.com/lukasgeis/negative-edge-weights/potential"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// Result summarizes a completed Run.
type Result struct {
	Rounds   int64
	Accepted int64
	Rejected int64
}

// ErrCheckMismatch is returned when cfg.Check is set and the independent
// Bellman-Ford cross-check disagrees with the driving oracle's verdict —
// a bug in an oracle, not in the graph being sampled.
type ErrCheckMismatch struct {
	Round         int64
	Edge          int
	OracleVerdict oracle.Decision
	CheckVerdict  oracle.Decision
}

func (e *ErrCheckMismatch) Error() string {
	return fmt.Sprintf("mcmc: round %d edge %d: oracle verdict %v disagrees with check verdict %v",
		e.Round, e.Edge, e.OracleVerdict, e.CheckVerdict)
}

// Run drives cfg.AbsoluteRounds(g.M()) proposals against g, mutating its
// edge weights in place and returning how many were accepted (spec §4).
//
// Determinism (spec invariant 4): every RNG stream Run uses is derived
// from cfg.Seed via weight.Stream, always in the same order, regardless of
// cfg.Oracle or cfg.Check — so two runs with identical Config and graph
// topology produce bit-identical weight sequences no matter which oracle
// answered the feasibility queries.
func Run[T weight.Real](g *graphcore.Graph[T], cfg *Config[T]) (*Result, error) {
	root := weight.RootRNG(cfg.Seed)
	edgeSelectRNG := weight.Stream(root, weight.StreamEdgeSelect)
	weightSampleRNG := weight.Stream(root, weight.StreamWeightSample)
	initRNG := weight.Stream(root, weight.StreamInit)
	sweepRNG := weight.Stream(root, weight.StreamSweepPermutation)

	if err := applyInit(g, cfg, initRNG); err != nil {
		return nil, err
	}

	h := potential.New[T](g.N())
	oc := newOracle(cfg.Oracle, g.N(), cfg.WMax)
	var checker oracle.Oracle[T]
	if cfg.Check {
		checker = oracle.NewBellmanFord(g.N(), cfg.WMax)
	}

	m := g.M()
	rounds := cfg.AbsoluteRounds(m)
	res := &Result{Rounds: rounds}

	order := newEdgeOrder(m, cfg.Rounds, sweepRNG)

	for round := int64(0); round < rounds; round++ {
		e := order.next(edgeSelectRNG)
		u, v := g.Tail(e), g.Head(e)

		var wPrime T
		if order.sweep {
			// Sweep mode always attempts the single most aggressive move:
			// lower the edge straight to WMin (spec §4.3 "Budget modes").
			// No weightSampleRNG draw happens here, so a sweep run's RNG
			// consumption is independent of the round-mode target-weight
			// stream by construction.
			wPrime = cfg.WMin
		} else {
			var err error
			wPrime, err = weight.Sample(weightSampleRNG, cfg.WMin, cfg.WMax)
			if err != nil {
				return nil, err
			}
		}

		decision := oc.Query(g, h, e, u, v, wPrime)
		if checker != nil {
			checkDecision := checker.Query(g, h, e, u, v, wPrime)
			if checkDecision != decision {
				return nil, &ErrCheckMismatch{Round: round, Edge: e, OracleVerdict: decision, CheckVerdict: checkDecision}
			}
		}

		old := g.Weight(e)
		var reachedCount int
		if decision == oracle.Accept {
			g.SetWeight(e, wPrime)
			reached, threshold := oc.Deltas()
			h.Repair(reached, threshold)
			reachedCount = len(reached)
			res.Accepted++
			if cfg.RenormalizeEvery > 0 && res.Accepted%cfg.RenormalizeEvery == 0 {
				h.Renormalize()
			}
		} else {
			res.Rejected++
		}

		cfg.Observer.OnProposal(hooks.Round[T]{
			Index:        round,
			Edge:         e,
			Tail:         u,
			Head:         v,
			OldWeight:    old,
			NewWeight:    wPrime,
			Decision:     hooks.Decision(decision),
			ReachedCount: reachedCount,
		})
	}

	return res, nil
}

func newOracle[T weight.Real](kind OracleKind, n int, wMax T) oracle.Oracle[T] {
	switch kind {
	case OracleUnidirectional:
		return oracle.NewUnidirectional(n, wMax)
	case OracleBellmanFord:
		return oracle.NewBellmanFord(n, wMax)
	default:
		return oracle.NewBidirectional(n, wMax)
	}
}

// edgeOrder supplies the next edge id to propose against. In round mode
// (cfg.Rounds >= 0) it draws uniformly from edgeSelectRNG each call. In
// sweep mode it hands out a freshly shuffled permutation of [0,m) once per
// m calls, so every edge is proposed against exactly once per sweep.
type edgeOrder struct {
	m      int
	sweep  bool
	rng    *rand.Rand // sweepRNG, used only when sweep is true
	perm   []int
	cursor int
}

func newEdgeOrder(m int, rounds int64, sweepRNG *rand.Rand) *edgeOrder {
	o := &edgeOrder{m: m, sweep: rounds < 0, rng: sweepRNG}
	if o.sweep {
		o.perm = make([]int, m)
		o.reshuffle()
	}
	return o
}

func (o *edgeOrder) reshuffle() {
	for i := range o.perm {
		o.perm[i] = i
	}
	o.rng.Shuffle(o.m, func(i, j int) { o.perm[i], o.perm[j] = o.perm[j], o.perm[i] })
	o.cursor = 0
}

// next returns the next edge id to propose against. edgeSelectRNG is only
// consumed in round mode, so sweep mode's edge order depends solely on the
// dedicated sweepRNG stream (spec invariant 4: determinism must not depend
// on which other streams happen to be active).
func (o *edgeOrder) next(edgeSelectRNG *rand.Rand) int {
	if !o.sweep {
		return edgeSelectRNG.Intn(o.m)
	}
	if o.cursor == o.m {
		o.reshuffle()
	}
	e := o.perm[o.cursor]
	o.cursor++
	return e
}
