package repository

import (
	"context"
	"database/sql"
	"etfbuilder/internal/db/models/postgres/public/model"
	"etfbuilder/internal/db/models/postgres/public/table"
	"etfbuilder/internal/domain"
	"fmt"
	"sort"

	"github.com/go-jet/jet/v2/postgres"
)

// AssetCatalogRepository resolves asset price histories for the calculator.
// Keys that aren't known are left out of the returned catalog rather than
// treated as an error, so the calculator can report them.
type AssetCatalogRepository interface {
	Get(ctx context.Context, keys []string) (domain.AssetCatalog, error)
	List(ctx context.Context) ([]domain.AssetInfo, error)
}

// PostgresAssetCatalogRepository also supports writing catalog entries
type PostgresAssetCatalogRepository interface {
	AssetCatalogRepository
	Add(ctx context.Context, assets []domain.AssetSeries) error
}

type assetCatalogRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetCatalogRepository(db *sql.DB) PostgresAssetCatalogRepository {
	return assetCatalogRepositoryHandler{Db: db}
}

func (h assetCatalogRepositoryHandler) Get(ctx context.Context, keys []string) (domain.AssetCatalog, error) {
	if len(keys) == 0 {
		return domain.AssetCatalog{}, nil
	}
	return h.load(ctx, keys)
}

func (h assetCatalogRepositoryHandler) List(ctx context.Context) ([]domain.AssetInfo, error) {
	catalog, err := h.load(ctx, nil)
	if err != nil {
		return nil, err
	}
	return catalogInfo(catalog), nil
}

// load reads the given keys, or every asset when keys is nil
func (h assetCatalogRepositoryHandler) load(ctx context.Context, keys []string) (domain.AssetCatalog, error) {
	assetQuery := table.Asset.SELECT(table.Asset.AllColumns)
	priceQuery := table.AssetPrice.
		SELECT(table.AssetPrice.AllColumns)

	if keys != nil {
		keyExpressions := []postgres.Expression{}
		for _, k := range keys {
			keyExpressions = append(keyExpressions, postgres.String(k))
		}
		assetQuery = assetQuery.WHERE(table.Asset.Key.IN(keyExpressions...))
		priceQuery = priceQuery.WHERE(table.AssetPrice.Key.IN(keyExpressions...))
	}
	priceQuery = priceQuery.ORDER_BY(
		table.AssetPrice.Key.ASC(),
		table.AssetPrice.PeriodIndex.ASC(),
	)

	assets := []model.Asset{}
	err := assetQuery.QueryContext(ctx, h.Db, &assets)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}

	prices := []model.AssetPrice{}
	err = priceQuery.QueryContext(ctx, h.Db, &prices)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset prices: %w", err)
	}

	pricesByKey := map[string][]float64{}
	for _, p := range prices {
		pricesByKey[p.Key] = append(pricesByKey[p.Key], p.Price)
	}

	catalog := domain.AssetCatalog{}
	for _, a := range assets {
		series := domain.AssetSeries{
			Key:         a.Key,
			DisplayName: a.Name,
			Prices:      pricesByKey[a.Key],
		}
		if a.Color != nil {
			series.Color = *a.Color
		}
		if a.YearlyYield != nil {
			series.AnnualYieldRate = *a.YearlyYield
		}
		if series.Prices == nil {
			series.Prices = []float64{}
		}
		catalog[a.Key] = series
	}

	return catalog, nil
}

// Add upserts the assets and replaces their price histories
func (h assetCatalogRepositoryHandler) Add(ctx context.Context, assets []domain.AssetSeries) error {
	if len(assets) == 0 {
		return nil
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	assetModels := []model.Asset{}
	priceModels := []model.AssetPrice{}
	keyExpressions := []postgres.Expression{}
	for _, a := range assets {
		color := a.Color
		yearlyYield := a.AnnualYieldRate
		assetModels = append(assetModels, model.Asset{
			Key:         a.Key,
			Name:        a.DisplayName,
			Color:       &color,
			YearlyYield: &yearlyYield,
		})
		keyExpressions = append(keyExpressions, postgres.String(a.Key))
		for i, price := range a.Prices {
			priceModels = append(priceModels, model.AssetPrice{
				Key:         a.Key,
				PeriodIndex: int32(i),
				Price:       price,
			})
		}
	}

	assetQuery := table.Asset.
		INSERT(table.Asset.AllColumns).
		MODELS(assetModels).
		ON_CONFLICT(table.Asset.Key).
		DO_UPDATE(
			postgres.SET(
				table.Asset.Name.SET(table.Asset.EXCLUDED.Name),
				table.Asset.Color.SET(table.Asset.EXCLUDED.Color),
				table.Asset.YearlyYield.SET(table.Asset.EXCLUDED.YearlyYield),
			),
		)
	_, err = assetQuery.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to add assets: %w", err)
	}

	_, err = table.AssetPrice.
		DELETE().
		WHERE(table.AssetPrice.Key.IN(keyExpressions...)).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to clear asset prices: %w", err)
	}

	if len(priceModels) > 0 {
		_, err = table.AssetPrice.
			INSERT(table.AssetPrice.AllColumns).
			MODELS(priceModels).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to add asset prices: %w", err)
		}
	}

	return tx.Commit()
}

func catalogInfo(catalog domain.AssetCatalog) []domain.AssetInfo {
	out := []domain.AssetInfo{}
	for _, asset := range catalog {
		out = append(out, asset.Info())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
