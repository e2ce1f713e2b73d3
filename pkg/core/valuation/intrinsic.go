// Package valuation implements the discounted-cash-flow intrinsic value
// estimate over projected owner's earnings.
package valuation

import (
	"math"

	"wb_valuation/pkg/core/calc"
)

// IntrinsicValue estimates intrinsic value with a simplified DCF model:
// owner's earnings grow at a constant rate for the given number of years and
// each year's figure is discounted back to present value.
//
// FORMULA: Σ (OE × (1 + growth)^t / (1 + discount)^t) for t = 1..years
//
// Terms accumulate in ascending year order; the summation order is part of
// the contract so results reproduce bit-for-bit. years <= 0 yields the empty
// sum, 0, for any rates.
func IntrinsicValue(initialOwnersEarnings, growthRate, discountRate float64, years int) float64 {
	totalValue := 0.0
	for t := 1; t <= years; t++ {
		tf := float64(t)
		futureEarnings := initialOwnersEarnings * math.Pow(1+growthRate, tf)
		presentValue := futureEarnings / math.Pow(1+discountRate, tf)
		totalValue += presentValue
	}
	return totalValue
}

// PresentValueSchedule returns the per-year discounted terms of the
// intrinsic-value sum, ascending from year 1. A plain ascending accumulation
// over the schedule reproduces IntrinsicValue exactly; summation schemes that
// reorder or unroll the additions may differ in the last bit. years <= 0
// yields nil.
func PresentValueSchedule(initialOwnersEarnings, growthRate, discountRate float64, years int) []float64 {
	if years <= 0 {
		return nil
	}
	schedule := make([]float64, years)
	for t := 1; t <= years; t++ {
		tf := float64(t)
		futureEarnings := initialOwnersEarnings * math.Pow(1+growthRate, tf)
		schedule[t-1] = futureEarnings / math.Pow(1+discountRate, tf)
	}
	return schedule
}

// IntrinsicValuePerShare spreads the DCF intrinsic value across shares
// outstanding. Undefined when sharesOutstanding is exactly zero.
func IntrinsicValuePerShare(initialOwnersEarnings, growthRate, discountRate float64, years int, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, calc.ErrUndefined
	}
	return IntrinsicValue(initialOwnersEarnings, growthRate, discountRate, years) / sharesOutstanding, nil
}
