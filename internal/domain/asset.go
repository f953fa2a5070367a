package domain

// AssetSeries is one asset's monthly price history along with the display
// attributes the catalog carries for it. AnnualYieldRate is a decimal
// fraction and is 0 when the catalog doesn't specify one.
type AssetSeries struct {
	Key             string    `json:"key"`
	DisplayName     string    `json:"name"`
	Color           string    `json:"color"`
	AnnualYieldRate float64   `json:"yearlyYield"`
	Prices          []float64 `json:"prices"`
}

// AssetCatalog maps asset key to its series. It's resolved by the caller
// before any calculation runs.
type AssetCatalog map[string]AssetSeries

// AssetInfo is the listing view of a catalog entry, without prices
type AssetInfo struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"name"`
	Color       string  `json:"color"`
	YearlyYield float64 `json:"yearlyYield"`
	NumPrices   int     `json:"numPrices"`
}

func (a AssetSeries) Info() AssetInfo {
	return AssetInfo{
		Key:         a.Key,
		DisplayName: a.DisplayName,
		Color:       a.Color,
		YearlyYield: a.AnnualYieldRate,
		NumPrices:   len(a.Prices),
	}
}
