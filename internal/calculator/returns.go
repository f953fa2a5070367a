package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
)

// SimpleReturns computes curr/prev - 1 for each consecutive pair. Pairs with
// a zero or non-finite prev, or a non-finite curr, are skipped rather than
// failing, so the output can be shorter than len(series)-1.
//
// This can't tell a legitimately zero price apart from corrupt input, which
// shrinks the sample size of any metric built on top of it.
func SimpleReturns(series []float64) []float64 {
	returns := []float64{}
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		curr := series[i]
		if !isFinite(prev) || prev == 0 || !isFinite(curr) {
			continue
		}
		returns = append(returns, curr/prev-1)
	}
	return returns
}

// spread below this is rounding noise from an inexact mean, not variance
const zeroStdDevTolerance = 1e-12

// StdDev is the population standard deviation, 0 for empty input. A
// constant series always reports exactly 0.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil || !isFinite(stdev) || stdev < zeroStdDevTolerance {
		return 0
	}
	return stdev
}

// DownsideDeviation is the root mean square of the negative values, measured
// against 0 rather than the mean.
func DownsideDeviation(values []float64) float64 {
	sumSquares := 0.0
	count := 0
	for _, v := range values {
		if v < 0 {
			sumSquares += v * v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Sqrt(sumSquares / float64(count))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteOrZero(f float64) float64 {
	if isFinite(f) {
		return f
	}
	return 0
}
