package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func navFixture(t *testing.T) *NavTable {
	t.Helper()
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	}
	table, err := NewNavTable(dates, []string{"Benchmark", "Optimized"}, [][]float64{
		{1.0, 1.0},
		{1.01, 1.02},
		{0.99, 1.01},
		{1.02, 1.05},
	})
	require.NoError(t, err)
	return table
}

func TestNavTableSlice(t *testing.T) {
	table := navFixture(t)

	t.Run("in-bounds range", func(t *testing.T) {
		sliced := table.Slice(
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		)
		require.Len(t, sliced.Dates, 2)
		require.Equal(t, 1.01, sliced.Values[0][0])
	})

	t.Run("out-of-bounds range clamps instead of erroring", func(t *testing.T) {
		sliced := table.Slice(
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		)
		require.Len(t, sliced.Dates, 4)
		require.Equal(t, table.Start(), sliced.Start())
		require.Equal(t, table.End(), sliced.End())
	})

	t.Run("empty range after clamping yields empty table", func(t *testing.T) {
		sliced := table.Slice(
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		)
		require.Empty(t, sliced.Dates)
	})
}

func TestNavTableValidation(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := NewNavTable(dates, []string{"Benchmark"}, [][]float64{{1.0}, {1.1}})

	var invErr InvariantError
	require.ErrorAs(t, err, &invErr)
	require.Contains(t, invErr.Invariant, "strictly increasing")
}

func TestNavTableRequirePositive(t *testing.T) {
	table := navFixture(t)
	require.NoError(t, table.RequirePositive("Benchmark", "Optimized"))

	dates := []time.Time{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	bad, err := NewNavTable(dates, []string{"Benchmark"}, [][]float64{{0}})
	require.NoError(t, err)

	var invErr InvariantError
	require.ErrorAs(t, bad.RequirePositive("Benchmark"), &invErr)
}
