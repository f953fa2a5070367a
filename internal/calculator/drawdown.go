package calculator

// MaxDrawdown walks the series once, tracking the running peak, and returns
// the largest (peak - value) / peak seen as a non-negative decimal. Points
// where the peak isn't positive count as no drawdown.
func MaxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	maxDrawdown := 0.0
	peak := values[0]
	for _, value := range values {
		if value > peak {
			peak = value
		}
		if peak > 0 {
			drawdown := (peak - value) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}
