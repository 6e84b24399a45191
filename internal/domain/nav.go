package domain

import (
	"fmt"
	"time"
)

// The portfolio performance table carries one NAV series per strategy plus
// the cumulative active return. Column names match the upstream file.
const (
	StrategyBenchmark  = "Benchmark"
	StrategyOriginal   = "Original"
	StrategyOptimized  = "Optimized"
	StrategyNaiveAlpha = "Naive_Alpha"

	ColumnActiveReturn = "Active Return"
)

func StrategyColumns() []string {
	return []string{StrategyBenchmark, StrategyOriginal, StrategyOptimized, StrategyNaiveAlpha}
}

// NavTable is a date-indexed table of float series, one row per date.
// Dates are strictly increasing; rows align with Dates.
type NavTable struct {
	Dates   []time.Time
	Columns []string
	Values  [][]float64
}

func NewNavTable(dates []time.Time, columns []string, values [][]float64) (*NavTable, error) {
	if len(values) != len(dates) {
		return nil, InvariantError{
			Invariant: "nav rows align with dates",
			Detail:    fmt.Sprintf("%d dates but %d rows", len(dates), len(values)),
		}
	}
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, InvariantError{
				Invariant: "nav rows align with columns",
				Detail:    fmt.Sprintf("row %d has %d values, want %d", i, len(row), len(columns)),
			}
		}
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, InvariantError{
				Invariant: "nav dates strictly increasing",
				Detail:    fmt.Sprintf("%s does not follow %s", dates[i].Format(time.DateOnly), dates[i-1].Format(time.DateOnly)),
			}
		}
	}
	return &NavTable{Dates: dates, Columns: columns, Values: values}, nil
}

// RequirePositive checks that every value in the named columns is strictly
// positive. NAV series must be; derived series like active return need not.
func (t *NavTable) RequirePositive(columns ...string) error {
	for _, name := range columns {
		idx, err := t.columnIndex(name)
		if err != nil {
			return err
		}
		for i, row := range t.Values {
			if row[idx] <= 0 {
				return InvariantError{
					Invariant: "nav strictly positive",
					Detail:    fmt.Sprintf("column %q is %v on %s", name, row[idx], t.Dates[i].Format(time.DateOnly)),
				}
			}
		}
	}
	return nil
}

func (t *NavTable) columnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("nav table has no column %q", name)
}

// Column returns one series aligned with Dates.
func (t *NavTable) Column(name string) ([]float64, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Values))
	for i, row := range t.Values {
		out[i] = row[idx]
	}
	return out, nil
}

func (t *NavTable) Start() time.Time {
	return t.Dates[0]
}

func (t *NavTable) End() time.Time {
	return t.Dates[len(t.Dates)-1]
}

// Slice returns the rows within [start, end]. Bounds outside the index clamp
// to the nearest valid bound; a range that clamps to nothing yields an empty
// table, never an error.
func (t *NavTable) Slice(start, end time.Time) *NavTable {
	if len(t.Dates) == 0 {
		return t
	}
	if start.Before(t.Start()) {
		start = t.Start()
	}
	if end.After(t.End()) {
		end = t.End()
	}

	lo := 0
	for lo < len(t.Dates) && t.Dates[lo].Before(start) {
		lo++
	}
	hi := len(t.Dates)
	for hi > lo && t.Dates[hi-1].After(end) {
		hi--
	}

	return &NavTable{
		Dates:   t.Dates[lo:hi],
		Columns: t.Columns,
		Values:  t.Values[lo:hi],
	}
}
