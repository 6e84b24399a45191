package preparer

import (
	"sort"

	"alphadash/internal/domain"

	"github.com/montanaflynn/stats"
)

// SignalRealized is one holding's expected vs realized return, for the IC
// scatter.
type SignalRealized struct {
	ID          string  `json:"id"`
	Industry    string  `json:"industry"`
	AlphaSignal float64 `json:"alphaSignal"`
	RealizedRet float64 `json:"realizedRet"`
}

// JoinSignalRealized inner-joins the signal and stock-detail tables on ID.
// The join is strict in both directions: any ID present on one side only
// fails the whole view. Output is ordered by ID.
func JoinSignalRealized(signals []domain.SignalRow, stocks []domain.StockDetail) ([]SignalRealized, error) {
	realizedByID := make(map[string]domain.StockDetail, len(stocks))
	for _, s := range stocks {
		realizedByID[s.ID] = s
	}

	matched := map[string]bool{}
	out := make([]SignalRealized, 0, len(signals))
	for _, sig := range signals {
		stock, ok := realizedByID[sig.ID]
		if !ok {
			return nil, domain.JoinMismatchError{Key: sig.ID, Left: "signals", Right: "stock details"}
		}
		matched[sig.ID] = true
		out = append(out, SignalRealized{
			ID:          sig.ID,
			Industry:    sig.Industry,
			AlphaSignal: sig.AlphaSignal,
			RealizedRet: stock.RealizedRet,
		})
	}
	for _, s := range stocks {
		if !matched[s.ID] {
			return nil, domain.JoinMismatchError{Key: s.ID, Left: "stock details", Right: "signals"}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// InformationCoefficient is the Pearson correlation between the alpha signal
// and the realized return over the joined holdings. The underlying stats call
// quietly returns 0 on a zero-variance series, so degenerate inputs are
// rejected up front instead.
func InformationCoefficient(signals []domain.SignalRow, stocks []domain.StockDetail) (float64, error) {
	joined, err := JoinSignalRealized(signals, stocks)
	if err != nil {
		return 0, err
	}
	if len(joined) < 2 {
		return 0, domain.InsufficientDataError{
			Computation: "information coefficient",
			Reason:      "fewer than 2 matched holdings",
		}
	}

	expected := make([]float64, len(joined))
	realized := make([]float64, len(joined))
	for i, row := range joined {
		expected[i] = row.AlphaSignal
		realized[i] = row.RealizedRet
	}

	if err := requireVariance("alpha signal", expected); err != nil {
		return 0, err
	}
	if err := requireVariance("realized", realized); err != nil {
		return 0, err
	}

	return stats.Pearson(expected, realized)
}

func requireVariance(name string, series []float64) error {
	variance, err := stats.PopulationVariance(series)
	if err != nil {
		return err
	}
	if variance == 0 {
		return domain.InsufficientDataError{
			Computation: "information coefficient",
			Reason:      name + " series has zero variance",
		}
	}
	return nil
}

// RankBySignal totally orders the signal table by AlphaSignal, ties broken by
// ID ascending. The chart axis order depends on this being deterministic.
// Applying it to already-ranked input returns the same sequence.
func RankBySignal(signals []domain.SignalRow, ascending bool) []domain.SignalRow {
	out := make([]domain.SignalRow, len(signals))
	copy(out, signals)
	sort.Slice(out, func(i, j int) bool {
		if out[i].AlphaSignal != out[j].AlphaSignal {
			if ascending {
				return out[i].AlphaSignal < out[j].AlphaSignal
			}
			return out[i].AlphaSignal > out[j].AlphaSignal
		}
		return out[i].ID < out[j].ID
	})
	return out
}
