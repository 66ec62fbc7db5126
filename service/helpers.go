package service

import (
	"fmt"
	"math"
)

func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// requireFinite guards every result against NaN and ±Inf.
func requireFinite(what string, values ...float64) error {
	if !isFinite(values...) {
		return fmt.Errorf("%w: %s is not finite", ErrNotComputable, what)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func notComputableZero() error {
	return fmt.Errorf("%w: result underflows to zero", ErrNotComputable)
}
