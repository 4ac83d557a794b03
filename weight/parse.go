package weight

import (
	"fmt"
	"strconv"
)

// Parse converts s into T, the same four instantiations Real closes over.
// It exists for the CLI layer, which only knows weight bounds as strings
// (the -w/-W flags) until -t selects which numeric type they belong to.
func Parse[T Real](s string) (T, error) {
	var z T
	switch any(z).(type) {
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return z, fmt.Errorf("weight: parsing %q as int32: %w", s, err)
		}
		return any(int32(v)).(T), nil
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return z, fmt.Errorf("weight: parsing %q as int64: %w", s, err)
		}
		return any(v).(T), nil
	case float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return z, fmt.Errorf("weight: parsing %q as float32: %w", s, err)
		}
		return any(float32(v)).(T), nil
	case float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return z, fmt.Errorf("weight: parsing %q as float64: %w", s, err)
		}
		return any(v).(T), nil
	default:
		return z, fmt.Errorf("%w: %T", ErrUnsupportedType, z)
	}
}
