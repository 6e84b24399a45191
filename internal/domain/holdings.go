package domain

// SignalRow is one holding's alpha forecast. ID is unique across the table.
type SignalRow struct {
	ID          string
	Industry    string
	AlphaSignal float64
}

// HoldingWeight holds the raw benchmark and portfolio weights for one holding.
// Each column independently sums to 1 across the table.
type HoldingWeight struct {
	ID       string
	WeightBm float64
	WeightPf float64
}

type SectorWeight struct {
	Sector   string
	WeightBm float64
	WeightPf float64
}

// StockDetail carries the precomputed per-holding results from the upstream
// optimizer run. ActiveWeight may be negative.
type StockDetail struct {
	ID           string
	Industry     string
	RealizedRet  float64
	ActiveWeight float64
	Contribution float64
}

type Position string

const (
	PositionOverweight  Position = "Overweight"
	PositionUnderweight Position = "Underweight"
)

// PositionFor classifies an active weight. Zero counts as underweight - the
// upstream convention is a strict greater-than, and downstream tables depend
// on it staying that way.
func PositionFor(activeWeight float64) Position {
	if activeWeight > 0 {
		return PositionOverweight
	}
	return PositionUnderweight
}
