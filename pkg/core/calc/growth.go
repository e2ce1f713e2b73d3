package calc

import "math"

// EPSCAGR calculates the compound annual growth rate of EPS over a period,
// as a percentage.
//
// FORMULA: ((EPS_final / EPS_initial)^(1/years) - 1) × 100
//
// Undefined when initialEPS is exactly zero or years is not positive.
// A negative growth ratio raised to the fractional exponent yields NaN from
// math.Pow; that NaN is returned as a defined numeric result rather than
// remapped to ErrUndefined. Callers that need the distinction can check
// math.IsNaN.
func EPSCAGR(initialEPS, finalEPS, years float64) (float64, error) {
	if initialEPS == 0 || years <= 0 {
		return 0, ErrUndefined
	}
	return (math.Pow(finalEPS/initialEPS, 1/years) - 1) * 100, nil
}
