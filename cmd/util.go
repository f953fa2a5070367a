package cmd

import (
	"database/sql"
	"etfbuilder/api"
	"etfbuilder/internal/calculator"
	"etfbuilder/internal/logger"
	"etfbuilder/internal/metrics"
	"etfbuilder/internal/repository"
	"etfbuilder/internal/service"
	"etfbuilder/internal/util"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// NewAssetCatalogRepository builds the catalog source named in secrets. The
// returned db is nil for csv catalogs.
func NewAssetCatalogRepository(secrets *util.Secrets) (repository.AssetCatalogRepository, *sql.DB, error) {
	switch secrets.Catalog.Source {
	case util.CatalogSourcePostgres:
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		return repository.NewAssetCatalogRepository(dbConn), dbConn, nil
	default:
		repo, err := repository.NewCsvAssetCatalogRepositoryFromFiles(
			secrets.Catalog.AssetsPath,
			secrets.Catalog.PricesPath,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load csv catalog: %w", err)
		}
		return repo, nil, nil
	}
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	assetCatalogRepository, dbConn, err := NewAssetCatalogRepository(secrets)
	if err != nil {
		return nil, nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsRegistry := metrics.NewRegistry(registry)

	portfolioService := service.NewPortfolioService(
		assetCatalogRepository,
		calculator.NewPortfolioCalculator(),
		metricsRegistry,
	)

	apiHandler := &api.ApiHandler{
		Db:               dbConn,
		PortfolioService: portfolioService,
		Metrics:          metricsRegistry,
		Gatherer:         registry,
		Logger:           logger.New(),
	}

	return apiHandler, secrets, nil
}
