package domain

// MetricsBundle holds the risk/return figures for one value series.
// Percent fields are already multiplied by 100.
type MetricsBundle struct {
	CagrPct                 float64 `json:"cagrPct"`
	AnnualizedVolatilityPct float64 `json:"annualizedVolatilityPct"`
	// always <= 0
	MaxDrawdownPct       float64 `json:"maxDrawdownPct"`
	Sharpe               float64 `json:"sharpe"`
	Sortino              float64 `json:"sortino"`
	DiversificationScore float64 `json:"diversificationScore"`
	Gain                 float64 `json:"gain"`
	GainOnYield          float64 `json:"gainOnYield"`
}

// PortfolioResult is everything derived from one weighted basket. Series and
// SeriesWithYield both start at the initial capital; MetricsOff describes the
// price-only series and MetricsOn the yield-adjusted one.
type PortfolioResult struct {
	Series          []float64     `json:"series"`
	SeriesWithYield []float64     `json:"seriesWithYield"`
	MetricsOff      MetricsBundle `json:"metricsOff"`
	MetricsOn       MetricsBundle `json:"metricsOn"`
	Weights         []float64     `json:"weights"`
	Quantities      []float64     `json:"quantities"`
	Assets          AssetCatalog  `json:"assets"`
}
