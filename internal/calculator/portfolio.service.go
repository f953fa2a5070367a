package calculator

import (
	"etfbuilder/internal/domain"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// PortfolioCalculator turns a weighted basket of asset price histories into
// value series and metrics. Implementations hold no state, so one instance
// can serve any number of concurrent callers.
type PortfolioCalculator interface {
	Calculate(assetKeys []string, rawWeights []float64, catalog domain.AssetCatalog) (*domain.PortfolioResult, error)
}

type portfolioCalculatorHandler struct{}

func NewPortfolioCalculator() PortfolioCalculator {
	return portfolioCalculatorHandler{}
}

// Calculate validates the request, then builds the baseline and
// yield-adjusted series and the metrics for each. Any shape problem is
// returned as a domain.InputError before computation begins.
func (h portfolioCalculatorHandler) Calculate(
	assetKeys []string,
	rawWeights []float64,
	catalog domain.AssetCatalog,
) (*domain.PortfolioResult, error) {
	assets, err := resolveAssets(assetKeys, rawWeights, catalog)
	if err != nil {
		return nil, err
	}

	weights, err := NormalizeWeights(rawWeights)
	if err != nil {
		return nil, err
	}

	compounded := make([][]float64, len(assets))
	for i, asset := range assets {
		compounded[i] = CompoundedSeries(asset.Prices, asset.AnnualYieldRate)
	}

	quantities := Quantities(assets, weights)
	series := BaselineSeries(assets, quantities)
	seriesWithYield := YieldSeries(compounded, quantities)

	// only assets actually held take part in the diversification score
	priceReturns := [][]float64{}
	compoundedReturns := [][]float64{}
	for i, asset := range assets {
		if weights[i] == 0 {
			continue
		}
		priceReturns = append(priceReturns, SimpleReturns(asset.Prices))
		compoundedReturns = append(compoundedReturns, SimpleReturns(compounded[i]))
	}

	metricsOff := CalculateMetrics(series, priceReturns)
	metricsOn := CalculateMetrics(seriesWithYield, compoundedReturns)

	start := decimal.NewFromFloat(InitialCapital)
	endOff := lastValue(series)
	endOn := lastValue(seriesWithYield)

	metricsOff.Gain = endOff.Sub(start).InexactFloat64()
	metricsOff.GainOnYield = 0
	metricsOn.Gain = endOn.Sub(start).InexactFloat64()
	metricsOn.GainOnYield = endOn.Sub(endOff).InexactFloat64()

	return &domain.PortfolioResult{
		Series:          series,
		SeriesWithYield: seriesWithYield,
		MetricsOff:      metricsOff,
		MetricsOn:       metricsOn,
		Weights:         weights,
		Quantities:      quantities,
		Assets:          catalog,
	}, nil
}

// NormalizeWeights scales raw weights (e.g. 0-10 point allocations) so they
// sum to 1, preserving order
func NormalizeWeights(rawWeights []float64) ([]float64, error) {
	for i, w := range rawWeights {
		if !isFinite(w) || w < 0 {
			return nil, domain.NewInputError("weight %d is %v, weights must be finite and non-negative", i, w)
		}
	}
	sum := floats.Sum(rawWeights)
	if sum <= 0 {
		return nil, domain.NewInputError("weights must sum to a positive value, got %v", sum)
	}

	return floats.ScaleTo(make([]float64, len(rawWeights)), 1/sum, rawWeights), nil
}

func resolveAssets(assetKeys []string, rawWeights []float64, catalog domain.AssetCatalog) ([]domain.AssetSeries, error) {
	if len(assetKeys) != len(rawWeights) {
		return nil, domain.NewInputError("got %d weights for %d assets", len(rawWeights), len(assetKeys))
	}

	assets := make([]domain.AssetSeries, len(assetKeys))
	for i, key := range assetKeys {
		asset, ok := catalog[key]
		if !ok {
			return nil, domain.NewInputError("unknown asset %s", key)
		}
		if len(asset.Prices) == 0 {
			return nil, domain.NewInputError("asset %s has no prices", key)
		}
		if first := asset.Prices[0]; !isFinite(first) || first <= 0 {
			return nil, domain.NewInputError("asset %s has first price %v, must be positive", key, first)
		}
		if i > 0 && len(asset.Prices) != len(assets[0].Prices) {
			return nil, domain.NewInputError(
				"asset %s has %d prices but %s has %d, all assets must share the same length",
				key, len(asset.Prices), assets[0].Key, len(assets[0].Prices),
			)
		}
		if asset.Key == "" {
			asset.Key = key
		}
		assets[i] = asset
	}

	return assets, nil
}

func lastValue(series []float64) decimal.Decimal {
	last := series[len(series)-1]
	if !isFinite(last) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(last)
}
