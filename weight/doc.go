// Package weight provides the numeric algebra the MCMC core is built on:
// addition/subtraction with a documented overflow policy, total order, an
// infinity sentinel, and the two random samplers the driver needs (uniform
// float over a closed real interval, uniform integer over a closed integer
// range).
//
// The algebra is monomorphized per run: the Real constraint is instantiated once for
// whichever of int32, int64, float32, float64 the CLI's -t flag selects, so
// the hot proposal loop never boxes a weight value.
//
// Overflow policy:
//
//	Integer instantiations wrap on overflow (Go's native two's-complement
//	behavior for +/-). This is a deliberate choice, not an oversight: the
//	driver's correctness only depends on total order and the triangle
//	inequality holding for sums of at most n weights drawn from [w_min,
//	w_max], so callers must pick bounds and a width that cannot accumulate
//	past the type's range across a run (see Infinity's doc comment).
//	Float instantiations saturate at the IEEE-754 infinities, which already
//	compare correctly against any finite value.
//
// Determinism: both samplers pull from a *rand.Rand the caller owns and
// seeds explicitly (see Stream); no sampler here touches a global source.
package weight
