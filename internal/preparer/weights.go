// Package preparer derives display-ready tables and series from the loaded
// input tables. Every function is pure: it reads its arguments, allocates its
// result, and never touches shared state. Joins are strict - an unmatched key
// fails the view instead of silently dropping rows.
package preparer

import (
	"sort"

	"alphadash/internal/domain"

	"github.com/shopspring/decimal"
)

// WeightNode is one holding in the Industry > ID hierarchy.
type WeightNode struct {
	ID       string  `json:"id"`
	Industry string  `json:"industry"`
	WeightBm float64 `json:"weightBm"`
	WeightPf float64 `json:"weightPf"`
}

// IndustryWeight is a parent node; its weights are the sum of its children's.
type IndustryWeight struct {
	Industry string  `json:"industry"`
	WeightBm float64 `json:"weightBm"`
	WeightPf float64 `json:"weightPf"`
}

type WeightHierarchy struct {
	Holdings   []WeightNode     `json:"holdings"`
	Industries []IndustryWeight `json:"industries"`
}

// each weight column must total 1, give or take float rounding
var weightSumTolerance = decimal.New(1, -6)

// PrepareWeightHierarchy joins the raw weights to the signal table's Industry
// column and aggregates per-industry subtotals. Every weight row must have a
// matching signal row. Both weight columns are checked to sum to 1 within
// tolerance; the sums are accumulated in decimal so the check itself doesn't
// drift.
func PrepareWeightHierarchy(signals []domain.SignalRow, weights []domain.HoldingWeight) (*WeightHierarchy, error) {
	industryByID := make(map[string]string, len(signals))
	for _, s := range signals {
		industryByID[s.ID] = s.Industry
	}

	sumBm := decimal.Zero
	sumPf := decimal.Zero
	holdings := make([]WeightNode, 0, len(weights))
	for _, w := range weights {
		industry, ok := industryByID[w.ID]
		if !ok {
			return nil, domain.JoinMismatchError{Key: w.ID, Left: "weights", Right: "signals"}
		}
		holdings = append(holdings, WeightNode{
			ID:       w.ID,
			Industry: industry,
			WeightBm: w.WeightBm,
			WeightPf: w.WeightPf,
		})
		sumBm = sumBm.Add(decimal.NewFromFloat(w.WeightBm))
		sumPf = sumPf.Add(decimal.NewFromFloat(w.WeightPf))
	}

	one := decimal.NewFromInt(1)
	if sumBm.Sub(one).Abs().GreaterThan(weightSumTolerance) {
		return nil, domain.InvariantError{
			Invariant: "benchmark weights sum to 1",
			Detail:    "sum is " + sumBm.String(),
		}
	}
	if sumPf.Sub(one).Abs().GreaterThan(weightSumTolerance) {
		return nil, domain.InvariantError{
			Invariant: "portfolio weights sum to 1",
			Detail:    "sum is " + sumPf.String(),
		}
	}

	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].Industry != holdings[j].Industry {
			return holdings[i].Industry < holdings[j].Industry
		}
		return holdings[i].ID < holdings[j].ID
	})

	subtotals := map[string]*IndustryWeight{}
	for _, h := range holdings {
		st, ok := subtotals[h.Industry]
		if !ok {
			st = &IndustryWeight{Industry: h.Industry}
			subtotals[h.Industry] = st
		}
		st.WeightBm += h.WeightBm
		st.WeightPf += h.WeightPf
	}
	industries := make([]IndustryWeight, 0, len(subtotals))
	for _, st := range subtotals {
		industries = append(industries, *st)
	}
	sort.Slice(industries, func(i, j int) bool {
		return industries[i].Industry < industries[j].Industry
	})

	return &WeightHierarchy{Holdings: holdings, Industries: industries}, nil
}

// SectorActiveWeight is a sector weight row with its derived active weight.
type SectorActiveWeight struct {
	Sector       string  `json:"sector"`
	WeightBm     float64 `json:"weightBm"`
	WeightPf     float64 `json:"weightPf"`
	ActiveWeight float64 `json:"activeWeight"`
}

// ComputeActiveWeights derives ActiveWeight = WeightPf - WeightBm
// elementwise. No join - both columns are already on the row.
func ComputeActiveWeights(sectors []domain.SectorWeight) []SectorActiveWeight {
	out := make([]SectorActiveWeight, len(sectors))
	for i, s := range sectors {
		out[i] = SectorActiveWeight{
			Sector:       s.Sector,
			WeightBm:     s.WeightBm,
			WeightPf:     s.WeightPf,
			ActiveWeight: s.WeightPf - s.WeightBm,
		}
	}
	return out
}
