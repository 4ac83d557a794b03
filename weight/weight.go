package weight

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for the weight algebra.
var (
	// ErrBadBounds indicates w_min > w_max was supplied to a sampler.
	ErrBadBounds = errors.New("weight: w_min > w_max")

	// ErrUnsupportedType indicates a type parameter outside {int32,int64,float32,float64}
	// reached a generic entry point. This can only happen via reflection trickery;
	// normal instantiation through the four supported types never triggers it.
	ErrUnsupportedType = errors.New("weight: unsupported numeric type")
)

// Real is the set of numeric types the weight algebra can be instantiated
// over. Deliberately closed (no ~) so the type-switch-then-assert pattern
// used throughout this package is sound: any(T value).(ConcreteType) only
// ever needs to match one of these four identical types.
type Real interface {
	int32 | int64 | float32 | float64
}

// Add returns a+b using T's native addition: wrapping for integer T,
// saturating (to +/-Inf) for float T, per the package doc's overflow policy.
func Add[T Real](a, b T) T { return a + b }

// Sub returns a-b using T's native subtraction; see Add for overflow policy.
func Sub[T Real](a, b T) T { return a - b }

// Less reports whether a < b under T's native total order.
func Less[T Real](a, b T) bool { return a < b }

// IsFloat reports whether T is one of the floating-point instantiations.
// Exposed so callers building oracles can pick a NaN-free comparison path
// without re-deriving it via reflection.
func IsFloat[T Real]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// Infinity returns a sentinel strictly greater than any representable weight
// in [w_min, w_max] plus any sum of at most n such weights — the bound the
// potential-repair and oracle-termination logic relies on (spec §4.1).
//
// Float instantiations return the IEEE-754 +Inf, which compares correctly
// against every finite value by construction. Integer instantiations return
// (n+1)*w_max + 1 computed in int64 and truncated to T; per the package's
// documented wrap policy, choosing w_max and n so that this does not wrap is
// the caller's responsibility; nothing in this module checks it.
func Infinity[T Real](wMax T, n int) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	case int32:
		wm := int64(any(wMax).(int32))
		return any(int32(wm*int64(n+1) + 1)).(T)
	case int64:
		wm := any(wMax).(int64)
		return any(wm*int64(n+1) + 1).(T)
	default:
		panic(ErrUnsupportedType)
	}
}

// Sample draws one value uniformly from the closed interval [lo, hi]: the
// continuous Lebesgue-uniform measure for float instantiations (via
// gonum.org/v1/gonum/stat/distuv.Uniform), the discrete uniform measure over
// {lo, lo+1, ..., hi} for integer instantiations (via rng.Int63n, range-mapped).
// rng must be non-nil and owned by the caller alone (math/rand.Rand is not
// goroutine-safe); see Stream for how the driver derives independent streams.
//
// Returns ErrBadBounds if lo > hi.
func Sample[T Real](rng *rand.Rand, lo, hi T) (T, error) {
	if Less(hi, lo) {
		return *new(T), fmt.Errorf("%w: lo=%v hi=%v", ErrBadBounds, lo, hi)
	}

	var z T
	switch any(z).(type) {
	case float32:
		l, h := float64(any(lo).(float32)), float64(any(hi).(float32))
		d := distuv.Uniform{Min: l, Max: h, Src: rng}
		return any(float32(d.Rand())).(T), nil
	case float64:
		l, h := any(lo).(float64), any(hi).(float64)
		d := distuv.Uniform{Min: l, Max: h, Src: rng}
		return any(d.Rand()).(T), nil
	case int32:
		l, h := int64(any(lo).(int32)), int64(any(hi).(int32))
		span := h - l + 1
		return any(int32(l + rng.Int63n(span))).(T), nil
	case int64:
		l, h := any(lo).(int64), any(hi).(int64)
		span := h - l + 1
		return any(l + rng.Int63n(span)).(T), nil
	default:
		return *new(T), fmt.Errorf("%w: %T", ErrUnsupportedType, z)
	}
}
