package calc

import "gonum.org/v1/gonum/stat"

// roeSeries converts paired net-income / equity histories into an ROE series
// in percent. Series must be the same non-zero length; any zero-equity year
// makes the whole series undefined.
func roeSeries(netIncomes, equities []float64) ([]float64, error) {
	if len(netIncomes) == 0 || len(netIncomes) != len(equities) {
		return nil, ErrUndefined
	}
	roes := make([]float64, len(netIncomes))
	for i, ni := range netIncomes {
		roe, err := ReturnOnEquity(ni, equities[i])
		if err != nil {
			return nil, err
		}
		roes[i] = roe
	}
	return roes, nil
}

// MeanROE returns the arithmetic mean ROE (percent) across paired multi-year
// net-income and equity series. Buffett's consistency screen reads this
// alongside ROEVolatility: a durable franchise shows a high mean and a low
// spread.
func MeanROE(netIncomes, equities []float64) (float64, error) {
	roes, err := roeSeries(netIncomes, equities)
	if err != nil {
		return 0, err
	}
	return stat.Mean(roes, nil), nil
}

// ROEVolatility returns the sample standard deviation of the ROE series, in
// percentage points. Undefined for series shorter than two years.
func ROEVolatility(netIncomes, equities []float64) (float64, error) {
	roes, err := roeSeries(netIncomes, equities)
	if err != nil {
		return 0, err
	}
	if len(roes) < 2 {
		return 0, ErrUndefined
	}
	return stat.StdDev(roes, nil), nil
}
