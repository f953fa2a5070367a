package calculator

import (
	"etfbuilder/internal/domain"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// InitialCapital anchors every value series: series[0] is always this value
const InitialCapital = 1000.0

// Quantities is the number of units of each asset bought with its share of
// the initial capital at the first price
func Quantities(assets []domain.AssetSeries, weights []float64) []float64 {
	quantities := make([]float64, len(assets))
	for i, asset := range assets {
		quantities[i] = InitialCapital * weights[i] / asset.Prices[0]
	}
	return quantities
}

// BaselineSeries is the buy-and-hold value of the given quantities at every
// price index
func BaselineSeries(assets []domain.AssetSeries, quantities []float64) []float64 {
	numPeriods := seriesLength(assets)
	out := make([]float64, numPeriods)
	pricesAt := make([]float64, len(assets))
	for t := 0; t < numPeriods; t++ {
		for i, asset := range assets {
			pricesAt[i] = asset.Prices[t]
		}
		out[t] = roundValue(floats.Dot(quantities, pricesAt))
	}
	return out
}

// YieldSeries values each asset's capital share along its own compounded
// price track: C * w * compounded[t] / p0, i.e. the same quantities held at
// compounded prices. It's computed independently from BaselineSeries since
// the compounded track is not a transform of the baseline value; with no
// yield the tracks equal the prices and both series match exactly.
func YieldSeries(compounded [][]float64, quantities []float64) []float64 {
	numPeriods := 0
	if len(compounded) > 0 {
		numPeriods = len(compounded[0])
	}
	out := make([]float64, numPeriods)
	compoundedAt := make([]float64, len(compounded))
	for t := 0; t < numPeriods; t++ {
		for i, track := range compounded {
			compoundedAt[i] = track[t]
		}
		out[t] = roundValue(floats.Dot(quantities, compoundedAt))
	}
	return out
}

func seriesLength(assets []domain.AssetSeries) int {
	if len(assets) == 0 {
		return 0
	}
	return len(assets[0].Prices)
}

// rounds to cents; decimal panics on NaN/Inf so those pass through untouched
func roundValue(f float64) float64 {
	if !isFinite(f) {
		return f
	}
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
