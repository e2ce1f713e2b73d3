package valuation

import "wb_valuation/pkg/core/calc"

// MarginOfSafety expresses the discount of the market price to intrinsic
// value per share, as a percentage of intrinsic value. Positive when the
// stock trades below intrinsic value, negative when it trades above.
//
// FORMULA: ((Intrinsic Value - Market Price) / Intrinsic Value) × 100
//
// Undefined when intrinsic value per share is exactly zero.
func MarginOfSafety(intrinsicValuePerShare, marketPrice float64) (float64, error) {
	if intrinsicValuePerShare == 0 {
		return 0, calc.ErrUndefined
	}
	return ((intrinsicValuePerShare - marketPrice) / intrinsicValuePerShare) * 100, nil
}
