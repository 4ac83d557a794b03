package mcmc

import (
	"errors"

	"github.com/lukasgeis/negative-edge-weights/hooks"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// InitPolicy selects how the initial edge weighting is produced before the
// first proposal (spec §4.4).
type InitPolicy int

const (
	// InitMax sets every edge weight to WMax, the feasible weighting with
	// maximum total weight (and the one most MCMC runs start from, since
	// it admits the widest range of early feasible proposals).
	InitMax InitPolicy = iota
	// InitZero sets every edge weight to zero.
	InitZero
	// InitUniform samples every edge weight independently and uniformly
	// from [0, WMax], never [WMin, WMax]: h starts at all zeros, so the
	// negative region must not be entered before the chain has a repaired
	// potential (spec §4.4, §9). [0, WMax] is acyclic-in-negatives by
	// construction, so the draw needs no verification.
	InitUniform
)

// OracleKind selects which feasibility oracle (spec §4.5) backs a Run.
type OracleKind int

const (
	OracleBidirectional OracleKind = iota // "bd", production default
	OracleUnidirectional                 // "d"
	OracleBellmanFord                    // "bf", O(n*m) reference
)

var (
	ErrBadWeightBounds = errors.New("mcmc: w_min > w_max")
	ErrUnknownInit     = errors.New("mcmc: unknown init policy")
	ErrUnknownOracle   = errors.New("mcmc: unknown oracle kind")
)

// Config collects a Run's parameters (spec §4.4, §6). Build one with New
// and functional Options, the way lvlath/builder assembles a GraphOption
// chain.
type Config[T weight.Real] struct {
	WMin, WMax T

	// Rounds is the proposal budget. A positive value is an absolute round
	// count. A negative value is a sweep count: |Rounds| full passes over
	// the edge set, i.e. |Rounds|*m proposals (spec §4.4 "Round budget").
	Rounds int64

	Init   InitPolicy
	Oracle OracleKind
	Seed   int64

	// Check re-decides every proposal, Accept or Reject, with a second
	// oracle.BellmanFord before committing it, and Run fails with
	// *ErrCheckMismatch on any disagreement (spec §8, cross-validation
	// scenario). It adds an O(n*m) query per proposal and exists for
	// testing, not production use.
	Check bool

	// RenormalizeEvery triggers potential.Renormalize after this many
	// accepted proposals; 0 disables it. Only meaningful for integer
	// instantiations, where potential drift is otherwise unbounded over a
	// long run (spec §9 "Potential overflow").
	RenormalizeEvery int64

	Observer hooks.Observer[T]
}

// Option mutates a Config during construction.
type Option[T weight.Real] func(*Config[T])

// New builds a Config from wMin, wMax and a proposal budget, applying opts
// in order. Defaults: InitMax, OracleBidirectional, a fixed seed, no
// checking, no renormalization, hooks.NoOp.
func New[T weight.Real](wMin, wMax T, rounds int64, opts ...Option[T]) (*Config[T], error) {
	if weight.Less(wMax, wMin) {
		return nil, ErrBadWeightBounds
	}
	cfg := &Config[T]{
		WMin:     wMin,
		WMax:     wMax,
		Rounds:   rounds,
		Init:     InitMax,
		Oracle:   OracleBidirectional,
		Seed:     0,
		Observer: hooks.NoOp[T]{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Init < InitMax || cfg.Init > InitUniform {
		return nil, ErrUnknownInit
	}
	if cfg.Oracle < OracleBidirectional || cfg.Oracle > OracleBellmanFord {
		return nil, ErrUnknownOracle
	}
	return cfg, nil
}

func WithInit[T weight.Real](p InitPolicy) Option[T] {
	return func(c *Config[T]) { c.Init = p }
}

func WithOracle[T weight.Real](o OracleKind) Option[T] {
	return func(c *Config[T]) { c.Oracle = o }
}

func WithSeed[T weight.Real](seed int64) Option[T] {
	return func(c *Config[T]) { c.Seed = seed }
}

func WithCheck[T weight.Real](check bool) Option[T] {
	return func(c *Config[T]) { c.Check = check }
}

func WithRenormalizeEvery[T weight.Real](n int64) Option[T] {
	return func(c *Config[T]) { c.RenormalizeEvery = n }
}

func WithObserver[T weight.Real](o hooks.Observer[T]) Option[T] {
	return func(c *Config[T]) { c.Observer = o }
}

// AbsoluteRounds returns the actual proposal count for m edges, resolving
// Rounds' sweep-mode convention.
func (c *Config[T]) AbsoluteRounds(m int) int64 {
	if c.Rounds >= 0 {
		return c.Rounds
	}
	return -c.Rounds * int64(m)
}
