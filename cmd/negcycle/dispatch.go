package main

import (
	"fmt"

	"github.com/lukasgeis/negative-edge-weights/weight"
)

// dispatch resolves -t to a concrete numeric type and calls runTyped, the
// single generic entry point the whole CORE is monomorphized against for
// this invocation (spec §9 "Numeric genericity").
func dispatch(cfg cliConfig) (int, error) {
	switch cfg.typeName {
	case "i32":
		return runForType[int32](cfg)
	case "i64":
		return runForType[int64](cfg)
	case "f32":
		return runForType[float32](cfg)
	case "f64":
		return runForType[float64](cfg)
	default:
		return exitArgError, fmt.Errorf("%w: -t %q", errBadType, cfg.typeName)
	}
}

func runForType[T weight.Real](cfg cliConfig) (int, error) {
	wMin, err := weight.Parse[T](cfg.wMin)
	if err != nil {
		return exitArgError, err
	}
	wMax, err := weight.Parse[T](cfg.wMax)
	if err != nil {
		return exitArgError, err
	}
	if weight.Less(wMax, wMin) {
		return exitArgError, fmt.Errorf("%w: -w %v > -W %v", errBadBounds, wMin, wMax)
	}
	return runTyped(cfg, wMin, wMax)
}
