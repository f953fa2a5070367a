package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxDrawdown(t *testing.T) {
	t.Run("largest peak to trough", func(t *testing.T) {
		require.InDelta(t, 0.5, MaxDrawdown([]float64{100, 120, 90, 130, 65}), 1e-12)
	})

	t.Run("non-decreasing series", func(t *testing.T) {
		require.Equal(t, 0.0, MaxDrawdown([]float64{1000, 1000, 1100, 1210}))
	})

	t.Run("drop from first value", func(t *testing.T) {
		require.InDelta(t, 0.2, MaxDrawdown([]float64{1000, 800, 900}), 1e-12)
	})

	t.Run("non-positive peak", func(t *testing.T) {
		require.Equal(t, 0.0, MaxDrawdown([]float64{0, 0, 0}))
		require.Equal(t, 0.0, MaxDrawdown([]float64{-10, -20}))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, 0.0, MaxDrawdown(nil))
	})
}
