package calculator

import (
	"testing"

	"etfbuilder/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestQuantities(t *testing.T) {
	assets := []domain.AssetSeries{
		{Key: "A", Prices: []float64{100, 110}},
		{Key: "B", Prices: []float64{20, 25}},
	}

	require.Equal(
		t,
		"",
		cmp.Diff(
			[]float64{7.5, 12.5},
			Quantities(assets, []float64{0.75, 0.25}),
			approx,
		),
	)
}

func TestBaselineSeries(t *testing.T) {
	t.Run("single asset buy and hold", func(t *testing.T) {
		assets := []domain.AssetSeries{
			{Key: "A", Prices: []float64{100, 110, 121}},
		}
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]float64{1000, 1100, 1210},
				BaselineSeries(assets, []float64{10}),
			),
		)
	})

	t.Run("two assets rounded to cents", func(t *testing.T) {
		assets := []domain.AssetSeries{
			{Key: "A", Prices: []float64{3, 4}},
			{Key: "B", Prices: []float64{7, 5}},
		}
		quantities := Quantities(assets, []float64{0.5, 0.5})
		series := BaselineSeries(assets, quantities)

		// 500/3*4 + 500/7*5 = 666.666.. + 357.142..
		require.Equal(t, []float64{1000, 1023.81}, series)
	})
}

func TestYieldSeries(t *testing.T) {
	t.Run("matches baseline without yield", func(t *testing.T) {
		assets := []domain.AssetSeries{
			{Key: "A", Prices: []float64{100, 90, 130}},
			{Key: "B", Prices: []float64{10, 12, 11}},
		}
		weights := []float64{0.3, 0.7}
		compounded := [][]float64{
			CompoundedSeries(assets[0].Prices, 0),
			CompoundedSeries(assets[1].Prices, 0),
		}

		quantities := Quantities(assets, weights)

		require.Equal(
			t,
			"",
			cmp.Diff(
				BaselineSeries(assets, quantities),
				YieldSeries(compounded, quantities),
			),
		)
	})

	t.Run("anchored at initial capital", func(t *testing.T) {
		assets := []domain.AssetSeries{
			{Key: "A", Prices: []float64{100, 100}, AnnualYieldRate: 0.05},
		}
		compounded := [][]float64{CompoundedSeries(assets[0].Prices, 0.05)}

		series := YieldSeries(compounded, Quantities(assets, []float64{1}))

		require.Equal(t, InitialCapital, series[0])
		require.Equal(t, 1004.07, series[1])
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, YieldSeries(nil, nil))
	})
}
