package calculator

import (
	"math"
	"testing"

	"etfbuilder/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	t.Run("short window annualizes to a large figure", func(t *testing.T) {
		series := []float64{1000, 1100, 1210}
		assetReturns := [][]float64{SimpleReturns([]float64{100, 110, 121})}

		metrics := CalculateMetrics(series, assetReturns)

		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.MetricsBundle{
					// 1.21^6 - 1
					CagrPct:                 213.8428376721,
					AnnualizedVolatilityPct: 0,
					MaxDrawdownPct:          0,
					Sharpe:                  0,
					Sortino:                 0,
					DiversificationScore:    0,
				},
				metrics,
				approx,
			),
		)
	})

	t.Run("one year window", func(t *testing.T) {
		series := make([]float64, 13)
		for i := range series {
			series[i] = 1000
		}
		series[6] = 900
		series[12] = 1100

		metrics := CalculateMetrics(series, nil)

		require.InDelta(t, 10.0, metrics.CagrPct, 1e-9)
		require.InDelta(t, -10.0, metrics.MaxDrawdownPct, 1e-9)
		require.Greater(t, metrics.AnnualizedVolatilityPct, 0.0)
		require.InDelta(t, 0.1/(metrics.AnnualizedVolatilityPct/100), metrics.Sharpe, 1e-9)
	})

	t.Run("annualized volatility", func(t *testing.T) {
		series := []float64{1000, 1100, 990, 1089}
		returns := SimpleReturns(series)

		metrics := CalculateMetrics(series, nil)

		require.InDelta(t, StdDev(returns)*math.Sqrt(12)*100, metrics.AnnualizedVolatilityPct, 1e-9)
	})

	t.Run("sortino uses downside deviation", func(t *testing.T) {
		series := []float64{1000, 1100, 990, 1089}
		returns := SimpleReturns(series)
		cagr := math.Pow(1.089, 4) - 1

		metrics := CalculateMetrics(series, nil)

		require.InDelta(t, cagr/(DownsideDeviation(returns)*math.Sqrt(12)), metrics.Sortino, 1e-9)
	})

	t.Run("sortino falls back to sharpe without losses", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{1000, 1100, 1320}, nil)

		require.Greater(t, metrics.Sharpe, 0.0)
		require.Equal(t, metrics.Sharpe, metrics.Sortino)
	})

	t.Run("zero start value falls back to mean monthly return", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{0, 100, 110}, nil)

		// (1 + 0.1)^12 - 1
		require.InDelta(t, 213.8428376721, metrics.CagrPct, 1e-6)
	})

	t.Run("no usable returns", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{0, 0, 0}, nil)
		require.Equal(t, domain.MetricsBundle{}, metrics)
	})

	t.Run("single point", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{1000}, nil)
		require.Equal(t, domain.MetricsBundle{}, metrics)
	})

	t.Run("diversification from asset returns", func(t *testing.T) {
		metrics := CalculateMetrics(
			[]float64{1000, 1000, 1000},
			[][]float64{{0, 0}, {0, 0}},
		)
		require.Equal(t, 1.0, metrics.DiversificationScore)
	})

	t.Run("never NaN", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{1000, math.NaN(), -50, math.Inf(1)}, nil)
		for _, f := range []float64{
			metrics.CagrPct,
			metrics.AnnualizedVolatilityPct,
			metrics.Sharpe,
			metrics.Sortino,
			metrics.DiversificationScore,
		} {
			require.False(t, math.IsNaN(f))
			require.False(t, math.IsInf(f, 0))
		}
	})
}
