package calculator

import "math"

const monthsPerYear = 12

// MonthlyYieldRate converts an annual rate to the equivalent monthly
// compounding rate
func MonthlyYieldRate(annualYieldRate float64) float64 {
	return math.Pow(1+annualYieldRate, 1.0/monthsPerYear) - 1
}

// CompoundedSeries builds a price track that compounds the yield monthly on
// top of the price moves. The first element is prices[0] unchanged; each
// following element is the previous compounded value times the raw price
// ratio times (1 + monthly rate).
//
// While every ratio so far is defined the track is kept as prices[t] times
// the accumulated yield factor, which is the same product without the
// rounding drift of chaining ratios; with no yield it returns the prices
// exactly. A period whose ratio can't be computed (zero or non-finite
// previous price) carries the compounded value forward with only the yield
// applied, and later periods chain from there.
func CompoundedSeries(prices []float64, annualYieldRate float64) []float64 {
	if len(prices) == 0 {
		return []float64{}
	}

	growth := 1 + MonthlyYieldRate(annualYieldRate)
	out := make([]float64, len(prices))
	out[0] = prices[0]

	factor := 1.0
	unbroken := true
	for t := 1; t < len(prices); t++ {
		ratio, ok := priceRatio(prices[t-1], prices[t])
		switch {
		case !ok:
			unbroken = false
			out[t] = out[t-1] * growth
		case unbroken:
			factor *= growth
			out[t] = prices[t] * factor
		default:
			out[t] = out[t-1] * ratio * growth
		}
	}

	return out
}

func priceRatio(prev, curr float64) (float64, bool) {
	if prev == 0 || !isFinite(prev) {
		return 0, false
	}
	ratio := curr / prev
	if !isFinite(ratio) {
		return 0, false
	}
	return ratio, true
}
