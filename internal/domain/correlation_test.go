package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCorrelationMatrix(t *testing.T) {
	ids := []string{"AAPL", "MSFT"}

	t.Run("valid matrix", func(t *testing.T) {
		m, err := NewCorrelationMatrix(ids, [][]float64{
			{1, 0.6},
			{0.6, 1},
		})
		require.NoError(t, err)

		v, err := m.At("AAPL", "MSFT")
		require.NoError(t, err)
		require.Equal(t, 0.6, v)

		v, err = m.At("MSFT", "MSFT")
		require.NoError(t, err)
		require.Equal(t, 1.0, v)

		_, err = m.At("XOM", "MSFT")
		require.Error(t, err)
	})

	t.Run("asymmetry rejected", func(t *testing.T) {
		_, err := NewCorrelationMatrix(ids, [][]float64{
			{1, 0.6},
			{0.5, 1},
		})
		var invErr InvariantError
		require.ErrorAs(t, err, &invErr)
		require.Contains(t, invErr.Invariant, "symmetric")
	})

	t.Run("off-diagonal one rejected", func(t *testing.T) {
		_, err := NewCorrelationMatrix(ids, [][]float64{
			{1, 0.6},
			{0.6, 0.9},
		})
		var invErr InvariantError
		require.ErrorAs(t, err, &invErr)
		require.Contains(t, invErr.Invariant, "diagonal")
	})

	t.Run("out of range rejected", func(t *testing.T) {
		_, err := NewCorrelationMatrix(ids, [][]float64{
			{1, 1.2},
			{1.2, 1},
		})
		var invErr InvariantError
		require.ErrorAs(t, err, &invErr)
		require.Contains(t, invErr.Invariant, "[-1, 1]")
	})

	t.Run("non-square rejected", func(t *testing.T) {
		_, err := NewCorrelationMatrix(ids, [][]float64{
			{1, 0.6},
		})
		var invErr InvariantError
		require.ErrorAs(t, err, &invErr)
		require.Contains(t, invErr.Invariant, "square")
	})
}
