package service

import (
	"context"
	"etfbuilder/internal/calculator"
	"etfbuilder/internal/domain"
	"etfbuilder/internal/logger"
	"etfbuilder/internal/metrics"
	"etfbuilder/internal/repository"
	"fmt"
	"time"
)

// PortfolioService resolves the asset catalog for a request and hands it to
// the calculator. The calculator itself never does I/O.
type PortfolioService interface {
	Calculate(ctx context.Context, assetKeys []string, weights []float64) (*domain.PortfolioResult, error)
	ListAssets(ctx context.Context) ([]domain.AssetInfo, error)
}

type portfolioServiceHandler struct {
	AssetCatalogRepository repository.AssetCatalogRepository
	PortfolioCalculator    calculator.PortfolioCalculator
	Metrics                *metrics.Registry
}

func NewPortfolioService(
	assetCatalogRepository repository.AssetCatalogRepository,
	portfolioCalculator calculator.PortfolioCalculator,
	metricsRegistry *metrics.Registry,
) PortfolioService {
	return &portfolioServiceHandler{
		AssetCatalogRepository: assetCatalogRepository,
		PortfolioCalculator:    portfolioCalculator,
		Metrics:                metricsRegistry,
	}
}

func (h portfolioServiceHandler) Calculate(ctx context.Context, assetKeys []string, weights []float64) (*domain.PortfolioResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	result, err := h.calculate(ctx, assetKeys, weights)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		h.observe(metrics.ResultOk, elapsed, len(result.Series))
		log.Infow(
			"calculated portfolio",
			"assetKeys", assetKeys,
			"numPeriods", len(result.Series),
			"elapsedMs", elapsed.Milliseconds(),
		)
	case domain.IsInputError(err):
		h.observe(metrics.ResultInputError, elapsed, 0)
		log.Warnw("rejected portfolio input", "assetKeys", assetKeys, "error", err.Error())
	default:
		h.observe(metrics.ResultError, elapsed, 0)
		log.Errorw("failed to calculate portfolio", "assetKeys", assetKeys, "error", err.Error())
	}

	return result, err
}

func (h portfolioServiceHandler) calculate(ctx context.Context, assetKeys []string, weights []float64) (*domain.PortfolioResult, error) {
	// checked here too so a bad request never reaches the catalog
	if len(assetKeys) != len(weights) {
		return nil, domain.NewInputError("got %d weights for %d assets", len(weights), len(assetKeys))
	}

	catalog, err := h.AssetCatalogRepository.Get(ctx, assetKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset catalog: %w", err)
	}

	result, err := h.PortfolioCalculator.Calculate(assetKeys, weights, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate portfolio: %w", err)
	}

	return result, nil
}

func (h portfolioServiceHandler) ListAssets(ctx context.Context) ([]domain.AssetInfo, error) {
	assets, err := h.AssetCatalogRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (h portfolioServiceHandler) observe(result string, elapsed time.Duration, seriesLength int) {
	if h.Metrics == nil {
		return
	}
	h.Metrics.ObserveCalculation(result, elapsed, seriesLength)
}
