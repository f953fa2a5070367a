package repository

import (
	"context"
	"etfbuilder/internal/domain"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

type assetCsvRow struct {
	Key         string  `csv:"key"`
	Name        string  `csv:"name"`
	Color       string  `csv:"color"`
	YearlyYield float64 `csv:"yearlyYield"`
}

type priceCsvRow struct {
	Key    string  `csv:"key"`
	Period int     `csv:"period"`
	Price  float64 `csv:"price"`
}

type csvAssetCatalogRepositoryHandler struct {
	catalog domain.AssetCatalog
}

// NewCsvAssetCatalogRepositoryFromFiles reads an assets file
// (key,name,color,yearlyYield) and a prices file (key,period,price)
func NewCsvAssetCatalogRepositoryFromFiles(assetsPath, pricesPath string) (AssetCatalogRepository, error) {
	assetsFile, err := os.Open(assetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open assets file: %w", err)
	}
	defer assetsFile.Close()

	pricesFile, err := os.Open(pricesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open prices file: %w", err)
	}
	defer pricesFile.Close()

	return NewCsvAssetCatalogRepository(assetsFile, pricesFile)
}

func NewCsvAssetCatalogRepository(assets, prices io.Reader) (AssetCatalogRepository, error) {
	assetRows := []assetCsvRow{}
	if err := gocsv.Unmarshal(assets, &assetRows); err != nil {
		return nil, fmt.Errorf("failed to read assets csv: %w", err)
	}
	priceRows := []priceCsvRow{}
	if err := gocsv.Unmarshal(prices, &priceRows); err != nil {
		return nil, fmt.Errorf("failed to read prices csv: %w", err)
	}

	sort.SliceStable(priceRows, func(i, j int) bool {
		if priceRows[i].Key != priceRows[j].Key {
			return priceRows[i].Key < priceRows[j].Key
		}
		return priceRows[i].Period < priceRows[j].Period
	})
	pricesByKey := map[string][]float64{}
	for _, row := range priceRows {
		pricesByKey[row.Key] = append(pricesByKey[row.Key], row.Price)
	}

	catalog := domain.AssetCatalog{}
	for _, row := range assetRows {
		if _, ok := catalog[row.Key]; ok {
			return nil, fmt.Errorf("duplicate asset %s in assets csv", row.Key)
		}
		prices := pricesByKey[row.Key]
		if prices == nil {
			prices = []float64{}
		}
		catalog[row.Key] = domain.AssetSeries{
			Key:             row.Key,
			DisplayName:     row.Name,
			Color:           row.Color,
			AnnualYieldRate: row.YearlyYield,
			Prices:          prices,
		}
	}

	return csvAssetCatalogRepositoryHandler{catalog: catalog}, nil
}

func (h csvAssetCatalogRepositoryHandler) Get(ctx context.Context, keys []string) (domain.AssetCatalog, error) {
	out := domain.AssetCatalog{}
	for _, key := range keys {
		if asset, ok := h.catalog[key]; ok {
			out[key] = asset
		}
	}
	return out, nil
}

func (h csvAssetCatalogRepositoryHandler) List(ctx context.Context) ([]domain.AssetInfo, error) {
	return catalogInfo(h.catalog), nil
}
