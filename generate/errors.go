package generate

import "errors"

var (
	ErrTooFewNodes        = errors.New("generate: n is below the generator's minimum node count")
	ErrInvalidProbability = errors.New("generate: probability must lie in [0,1]")
	ErrNeedRandSource     = errors.New("generate: rng must not be nil")
	ErrInvalidDegree      = errors.New("generate: degree parameter must be positive")
)
