package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageAbsPairwiseCorrelation(t *testing.T) {
	t.Run("fewer than two series", func(t *testing.T) {
		require.Equal(t, 1.0, AverageAbsPairwiseCorrelation(nil))
		require.Equal(t, 1.0, AverageAbsPairwiseCorrelation([][]float64{{0.1, 0.2}}))
	})

	t.Run("proportional prices", func(t *testing.T) {
		pricesA := []float64{100, 110, 99, 120, 115}
		pricesB := make([]float64, len(pricesA))
		for i, p := range pricesA {
			pricesB[i] = 3.5 * p
		}

		avg := AverageAbsPairwiseCorrelation([][]float64{
			SimpleReturns(pricesA),
			SimpleReturns(pricesB),
		})
		require.InDelta(t, 1.0, avg, 1e-9)
	})

	t.Run("perfectly inverse", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{0.1, -0.1, 0.1, -0.2},
			{-0.1, 0.1, -0.1, 0.2},
		})
		require.InDelta(t, 1.0, avg, 1e-9)
	})

	t.Run("flat series contribute zero", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{0, 0, 0},
			{0, 0, 0},
		})
		require.Equal(t, 0.0, avg)
		require.False(t, math.IsNaN(avg))
	})

	t.Run("constant non-zero series contributes zero", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{0.1, 0.1, 0.1},
			{0.2, -0.1, 0.3},
		})
		require.Equal(t, 0.0, avg)
		require.Equal(t, 0.0, pearsonCorrelation([]float64{0.1, 0.1, 0.1}, []float64{0.2, -0.1, 0.3}))
		require.Equal(t, 1.0, DiversificationScore([][]float64{{0.1, 0.1, 0.1}, {0.2, -0.1, 0.3}}))
	})

	t.Run("one flat series among three", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{0.1, -0.05, 0.2},
			{0.2, -0.1, 0.4},
			{0, 0, 0},
		})
		// pairs: (a,b)=1, (a,c)=0, (b,c)=0
		require.InDelta(t, 1.0/3, avg, 1e-9)
	})

	t.Run("aligns to shortest trailing window", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{5, -3, 0.1, -0.1, 0.2},
			{0.1, -0.1, 0.2},
		})
		require.InDelta(t, 1.0, avg, 1e-9)
	})

	t.Run("empty aligned window", func(t *testing.T) {
		avg := AverageAbsPairwiseCorrelation([][]float64{
			{0.1, 0.2},
			{},
		})
		require.Equal(t, 0.0, avg)
	})
}

func TestDiversificationScore(t *testing.T) {
	t.Run("single asset", func(t *testing.T) {
		require.Equal(t, 0.0, DiversificationScore([][]float64{{0.1, -0.2, 0.3}}))
	})

	t.Run("identical shapes", func(t *testing.T) {
		score := DiversificationScore([][]float64{
			{0.1, -0.2, 0.3},
			{0.1, -0.2, 0.3},
		})
		require.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("flat series", func(t *testing.T) {
		require.Equal(t, 1.0, DiversificationScore([][]float64{{0, 0}, {0, 0}}))
	})

	t.Run("bounded", func(t *testing.T) {
		score := DiversificationScore([][]float64{
			{0.1, -0.05, 0.03, 0.02},
			{-0.02, 0.04, 0.01, -0.03},
			{0.05, 0.05, -0.1, 0.0},
		})
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
	})
}

func Test_clamp01(t *testing.T) {
	require.Equal(t, 0.0, clamp01(-0.2))
	require.Equal(t, 1.0, clamp01(1.5))
	require.Equal(t, 0.4, clamp01(0.4))
	require.Equal(t, 0.0, clamp01(math.NaN()))
}
