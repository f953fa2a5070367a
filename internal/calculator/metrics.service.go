package calculator

import (
	"math"

	"etfbuilder/internal/domain"
)

// CalculateMetrics computes the risk/return figures of one value series.
// assetReturns holds the simple returns of each held asset and is only used
// for the diversification score. Gain and GainOnYield are left at 0 for the
// caller to fill in.
//
// It never fails: every degenerate case (empty or flat series, a zero
// start value, a single asset) resolves to a neutral value so the output
// can be rendered directly.
func CalculateMetrics(series []float64, assetReturns [][]float64) domain.MetricsBundle {
	returns := SimpleReturns(series)

	cagr := annualizedReturn(series, returns)

	annualizedStdev := StdDev(returns) * math.Sqrt(monthsPerYear)
	annualizedDownside := DownsideDeviation(returns) * math.Sqrt(monthsPerYear)

	sharpe := 0.0
	if annualizedStdev > 0 {
		sharpe = cagr / annualizedStdev
	}

	sortino := 0.0
	if annualizedDownside > 0 {
		sortino = cagr / annualizedDownside
	} else if annualizedStdev > 0 {
		sortino = sharpe
	}

	maxDrawdownPct := 0.0
	if drawdown := MaxDrawdown(series); drawdown > 0 {
		maxDrawdownPct = -drawdown * 100
	}

	return domain.MetricsBundle{
		CagrPct:                 finiteOrZero(cagr * 100),
		AnnualizedVolatilityPct: finiteOrZero(annualizedStdev * 100),
		MaxDrawdownPct:          maxDrawdownPct,
		Sharpe:                  finiteOrZero(sharpe),
		Sortino:                 finiteOrZero(sortino),
		DiversificationScore:    DiversificationScore(assetReturns),
	}
}

// annualizedReturn assumes monthly samples. Short windows annualize to very
// large figures (two months of +10% is ~214% a year); that's expected.
func annualizedReturn(series []float64, returns []float64) float64 {
	years := 0.0
	if len(series) > 1 {
		years = float64(len(series)-1) / monthsPerYear
	}

	if len(series) > 0 {
		startValue := series[0]
		endValue := series[len(series)-1]
		if startValue > 0 && years > 0 {
			return finiteOrZero(math.Pow(endValue/startValue, 1/years) - 1)
		}
	}

	if len(returns) > 0 {
		return finiteOrZero(math.Pow(1+mean(returns), monthsPerYear) - 1)
	}

	return 0
}
