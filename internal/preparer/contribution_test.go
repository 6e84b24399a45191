package preparer

import (
	"testing"

	"alphadash/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRankContributionTable(t *testing.T) {
	stocks := []domain.StockDetail{
		{ID: "A", ActiveWeight: 0.02, Contribution: 0.001},
		{ID: "B", ActiveWeight: -0.01, Contribution: -0.002},
		{ID: "C", ActiveWeight: 0.0, Contribution: 0.0005},
		{ID: "D", ActiveWeight: 0.05, Contribution: 0.004},
	}

	ranked := RankContributionTable(stocks)
	require.Len(t, ranked, 4)

	// contribution descending: D, A, C, B
	require.Equal(t, "D", ranked[0].ID)
	require.Equal(t, "A", ranked[1].ID)
	require.Equal(t, "C", ranked[2].ID)
	require.Equal(t, "B", ranked[3].ID)

	require.Equal(t, domain.PositionOverweight, ranked[0].Position)
	require.Equal(t, domain.PositionOverweight, ranked[1].Position)
	// zero active weight is underweight, not neutral
	require.Equal(t, domain.PositionUnderweight, ranked[2].Position)
	require.Equal(t, domain.PositionUnderweight, ranked[3].Position)
}

func TestRankContributionTableTies(t *testing.T) {
	ranked := RankContributionTable([]domain.StockDetail{
		{ID: "B", Contribution: 0.001},
		{ID: "A", Contribution: 0.001},
	})
	require.Equal(t, "A", ranked[0].ID)
	require.Equal(t, "B", ranked[1].ID)
}

func TestAttributionByEffect(t *testing.T) {
	rows := []domain.AttributionRow{
		{Sector: "Technology", Allocation: 0.001, Selection: 0.002, Interaction: 0.0005},
		{Sector: "Energy", Allocation: -0.0005, Selection: 0.001, Interaction: 0.0002},
	}

	selection := AttributionByEffect(rows, domain.EffectSelection)
	require.Equal(t, "Energy", selection[0].Sector)
	require.Equal(t, 0.001, selection[0].Value)
	require.Equal(t, 0.002, selection[1].Value)

	total := AttributionByEffect(rows, domain.EffectTotal)
	require.InDelta(t, -0.0005+0.001+0.0002, total[0].Value, 1e-12)
	require.InDelta(t, 0.001+0.002+0.0005, total[1].Value, 1e-12)
}
