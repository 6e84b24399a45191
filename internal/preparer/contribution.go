package preparer

import (
	"sort"

	"alphadash/internal/domain"
)

// ContributionRow is one line of the stock-level contribution table.
type ContributionRow struct {
	ID           string          `json:"id"`
	Industry     string          `json:"industry"`
	Position     domain.Position `json:"position"`
	ActiveWeight float64         `json:"activeWeight"`
	RealizedRet  float64         `json:"realizedRet"`
	Contribution float64         `json:"contribution"`
}

// RankContributionTable derives each holding's Position label and orders the
// table by Contribution descending, ties broken by ID ascending. No row is
// dropped.
func RankContributionTable(stocks []domain.StockDetail) []ContributionRow {
	out := make([]ContributionRow, len(stocks))
	for i, s := range stocks {
		out[i] = ContributionRow{
			ID:           s.ID,
			Industry:     s.Industry,
			Position:     domain.PositionFor(s.ActiveWeight),
			ActiveWeight: s.ActiveWeight,
			RealizedRet:  s.RealizedRet,
			Contribution: s.Contribution,
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Contribution != out[j].Contribution {
			return out[i].Contribution > out[j].Contribution
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AttributionByEffect projects the per-sector decomposition onto one effect.
type SectorEffect struct {
	Sector string  `json:"sector"`
	Value  float64 `json:"value"`
}

func AttributionByEffect(rows []domain.AttributionRow, effect domain.Effect) []SectorEffect {
	out := make([]SectorEffect, len(rows))
	for i, r := range rows {
		out[i] = SectorEffect{Sector: r.Sector, Value: r.EffectValue(effect)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sector < out[j].Sector })
	return out
}
