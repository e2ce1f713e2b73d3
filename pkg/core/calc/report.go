package calc

// Statement is a single-period snapshot of the accounting figures the ratio
// formulas consume. It is a transient input value; sourcing the figures
// (filings, APIs, manual entry) is the caller's concern.
type Statement struct {
	NetIncome                float64
	DepreciationAmortization float64
	MaintenanceCapex         float64
	TotalAssets              float64
	TotalLiabilities         float64
	IntangibleAssets         float64
	ShareholdersEquity       float64
	SharesOutstanding        float64
}

// RatioReport holds every single-period metric derived from one Statement.
// Fallible ratios are pointers: nil means the ratio was undefined for this
// snapshot (zero divisor).
type RatioReport struct {
	OwnersEarnings            float64
	ReturnOnEquity            *float64 // percent
	ReturnOnNetTangibleAssets *float64 // percent
	DebtToEquity              *float64
	EarningsPerShare          *float64
}

// ComputeRatioReport derives all single-period ratios from one snapshot.
func ComputeRatioReport(s Statement) RatioReport {
	report := RatioReport{
		OwnersEarnings: OwnersEarnings(s.NetIncome, s.DepreciationAmortization, s.MaintenanceCapex),
	}
	if roe, err := ReturnOnEquity(s.NetIncome, s.ShareholdersEquity); err == nil {
		report.ReturnOnEquity = &roe
	}
	if ronta, err := ReturnOnNetTangibleAssets(s.NetIncome, s.TotalAssets, s.TotalLiabilities, s.IntangibleAssets); err == nil {
		report.ReturnOnNetTangibleAssets = &ronta
	}
	if de, err := DebtToEquity(s.TotalLiabilities, s.ShareholdersEquity); err == nil {
		report.DebtToEquity = &de
	}
	if eps, err := EarningsPerShare(s.NetIncome, s.SharesOutstanding); err == nil {
		report.EarningsPerShare = &eps
	}
	return report
}
