package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
)

// AverageAbsPairwiseCorrelation aligns every series to the shortest common
// trailing window and averages |pearson| over all unordered pairs. A pair
// where either side has zero variance contributes 0. With fewer than two
// series there is no diversification benefit to measure, so it returns 1.
func AverageAbsPairwiseCorrelation(seriesList [][]float64) float64 {
	if len(seriesList) < 2 {
		return 1
	}

	minLen := len(seriesList[0])
	for _, series := range seriesList[1:] {
		if len(series) < minLen {
			minLen = len(series)
		}
	}

	aligned := make([][]float64, len(seriesList))
	for i, series := range seriesList {
		aligned[i] = series[len(series)-minLen:]
	}

	sum := 0.0
	numPairs := 0
	for i := 0; i < len(aligned); i++ {
		for j := i + 1; j < len(aligned); j++ {
			sum += math.Abs(pearsonCorrelation(aligned[i], aligned[j]))
			numPairs++
		}
	}

	return sum / float64(numPairs)
}

// DiversificationScore is 1 - average |correlation|, clamped to [0, 1]
func DiversificationScore(seriesList [][]float64) float64 {
	return clamp01(1 - AverageAbsPairwiseCorrelation(seriesList))
}

// population pearson correlation; 0 whenever it's undefined
func pearsonCorrelation(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	if StdDev(a) == 0 || StdDev(b) == 0 {
		return 0
	}
	correlation, err := stats.Correlation(a, b)
	if err != nil {
		return 0
	}
	return finiteOrZero(correlation)
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
