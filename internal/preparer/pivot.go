package preparer

import (
	"sort"

	"alphadash/internal/domain"
)

type GridCell struct {
	Row float64
	Col float64
}

// ParameterGrid is the reshaped parameter-search table: one value per
// (row axis, col axis) pair. Rows and Cols are the sorted distinct axis
// values.
type ParameterGrid struct {
	RowAxis domain.PivotAxis
	ColAxis domain.PivotAxis
	Value   domain.PivotValue
	Rows    []float64
	Cols    []float64
	Cells   map[GridCell]float64
}

// At returns the cell value, if that parameter combination was evaluated.
func (g *ParameterGrid) At(row, col float64) (float64, bool) {
	v, ok := g.Cells[GridCell{Row: row, Col: col}]
	return v, ok
}

// Dense lays the grid out row-major for rendering. Combinations the search
// never evaluated come out nil, not zero.
func (g *ParameterGrid) Dense() [][]*float64 {
	out := make([][]*float64, len(g.Rows))
	for i, r := range g.Rows {
		out[i] = make([]*float64, len(g.Cols))
		for j, c := range g.Cols {
			if v, ok := g.Cells[GridCell{Row: r, Col: c}]; ok {
				value := v
				out[i][j] = &value
			}
		}
	}
	return out
}

// PivotParameterGrid filters the search results to Lambda < lambdaMax and
// reshapes them into a (rowAxis, colAxis) grid of the chosen value column.
// Two surviving rows landing on the same cell make the pivot ambiguous and
// fail it - nothing is silently overwritten.
func PivotParameterGrid(results []domain.ParameterResult, lambdaMax float64, rowAxis, colAxis domain.PivotAxis, value domain.PivotValue) (*ParameterGrid, error) {
	grid := &ParameterGrid{
		RowAxis: rowAxis,
		ColAxis: colAxis,
		Value:   value,
		Cells:   map[GridCell]float64{},
	}

	rowSeen := map[float64]bool{}
	colSeen := map[float64]bool{}
	for _, r := range results {
		if r.Lambda >= lambdaMax {
			continue
		}
		cell := GridCell{Row: rowAxis.Of(r), Col: colAxis.Of(r)}
		if _, ok := grid.Cells[cell]; ok {
			return nil, domain.DuplicateCellError{Row: cell.Row, Col: cell.Col}
		}
		grid.Cells[cell] = value.Of(r)
		if !rowSeen[cell.Row] {
			rowSeen[cell.Row] = true
			grid.Rows = append(grid.Rows, cell.Row)
		}
		if !colSeen[cell.Col] {
			colSeen[cell.Col] = true
			grid.Cols = append(grid.Cols, cell.Col)
		}
	}
	sort.Float64s(grid.Rows)
	sort.Float64s(grid.Cols)

	return grid, nil
}

// ActiveFrontier filters the search results to Lambda < lambdaMax for the
// risk/return scatter, ordered by risk then gamma/limit for a stable axis.
func ActiveFrontier(results []domain.ParameterResult, lambdaMax float64) []domain.ParameterResult {
	out := []domain.ParameterResult{}
	for _, r := range results {
		if r.Lambda < lambdaMax {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ActiveRisk != out[j].ActiveRisk {
			return out[i].ActiveRisk < out[j].ActiveRisk
		}
		if out[i].Gamma != out[j].Gamma {
			return out[i].Gamma < out[j].Gamma
		}
		return out[i].Limit < out[j].Limit
	})
	return out
}
