// Package calc provides deterministic financial calculations for the
// Buffett-style valuation model. This file implements the single-period
// ratio and earnings formulas.
package calc

import "errors"

// ErrUndefined is returned when a result is mathematically undefined for the
// given inputs: a required divisor is exactly zero, or a declared
// precondition does not hold. It is the only error this library produces;
// callers test for it with errors.Is.
var ErrUndefined = errors.New("calc: result undefined for inputs")

// OwnersEarnings calculates Owner's Earnings per Buffett's definition.
//
// FORMULA: Net Income + Depreciation & Amortization - Maintenance CapEx
//
// Total over all real inputs; there is no undefined case.
func OwnersEarnings(netIncome, depreciationAmortization, maintenanceCapex float64) float64 {
	return netIncome + depreciationAmortization - maintenanceCapex
}

// ReturnOnEquity calculates Return on Equity (ROE) as a percentage.
//
// FORMULA: (Net Income / Shareholders' Equity) × 100
//
// Undefined when shareholders' equity is exactly zero.
func ReturnOnEquity(netIncome, shareholdersEquity float64) (float64, error) {
	if shareholdersEquity == 0 {
		return 0, ErrUndefined
	}
	return (netIncome / shareholdersEquity) * 100, nil
}

// ReturnOnNetTangibleAssets calculates Return on Net Tangible Assets (RONTA)
// as a percentage.
//
// FORMULA: (Net Income / (Total Assets - Total Liabilities - Intangibles)) × 100
//
// Only the derived divisor is guarded, by exact zero equality. A near-zero
// divisor produced by cancellation of large statement figures is used as-is;
// a tolerance here would change reference outputs.
func ReturnOnNetTangibleAssets(netIncome, totalAssets, totalLiabilities, intangibleAssets float64) (float64, error) {
	netTangibleAssets := totalAssets - totalLiabilities - intangibleAssets
	if netTangibleAssets == 0 {
		return 0, ErrUndefined
	}
	return (netIncome / netTangibleAssets) * 100, nil
}

// DebtToEquity calculates the Debt-to-Equity ratio.
//
// FORMULA: Total Liabilities / Shareholders' Equity
//
// Undefined when shareholders' equity is exactly zero.
func DebtToEquity(totalLiabilities, shareholdersEquity float64) (float64, error) {
	if shareholdersEquity == 0 {
		return 0, ErrUndefined
	}
	return totalLiabilities / shareholdersEquity, nil
}

// EarningsPerShare calculates Earnings Per Share (EPS).
//
// FORMULA: Net Income / Shares Outstanding
//
// Undefined when shares outstanding is exactly zero.
func EarningsPerShare(netIncome, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, ErrUndefined
	}
	return netIncome / sharesOutstanding, nil
}
