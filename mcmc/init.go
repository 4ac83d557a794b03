package mcmc

import (
	"math/rand"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// applyInit sets g's edge weights according to cfg.Init, consuming rng
// from the weight.StreamInit stream (spec §4.4).
func applyInit[T weight.Real](g *graphcore.Graph[T], cfg *Config[T], rng *rand.Rand) error {
	switch cfg.Init {
	case InitMax:
		for e := 0; e < g.M(); e++ {
			g.SetWeight(e, cfg.WMax)
		}
		return nil
	case InitZero:
		var zero T
		for e := 0; e < g.M(); e++ {
			g.SetWeight(e, zero)
		}
		return nil
	case InitUniform:
		// Drawn from [0, WMax], never [WMin, WMax]: h starts at all zeros
		// (potential.New), so every edge's reduced cost equals its raw
		// weight until the first accepted proposal repairs h. A draw from
		// the negative region would make that reduced cost negative before
		// any oracle query has a valid potential to reason over (spec §4.4,
		// §9 "Initial weighting must not enter the negative region"). [0,
		// WMax] is acyclic-in-negatives by construction, so no verification
		// or resampling is needed here.
		var zero T
		for e := 0; e < g.M(); e++ {
			w, err := weight.Sample(rng, zero, cfg.WMax)
			if err != nil {
				return err
			}
			g.SetWeight(e, w)
		}
		return nil
	default:
		return ErrUnknownInit
	}
}
