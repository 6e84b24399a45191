package repository

import (
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"

	"github.com/gocarina/gocsv"
)

const ParameterSearchFileName = "parameter_search.csv"

type ParameterSearchRepository interface {
	Load() ([]domain.ParameterResult, error)
}

func NewParameterSearchRepository(dataDir string) ParameterSearchRepository {
	return parameterSearchRepositoryHandler{
		Path: filepath.Join(dataDir, ParameterSearchFileName),
	}
}

type parameterSearchRepositoryHandler struct {
	Path string
}

func (h parameterSearchRepositoryHandler) Load() ([]domain.ParameterResult, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		Gamma        float64 `csv:"Gamma"`
		Limit        float64 `csv:"Limit"`
		Lambda       float64 `csv:"Lambda"`
		Sharpe       float64 `csv:"Sharpe"`
		ActiveReturn float64 `csv:"Active_Return"`
		ActiveRisk   float64 `csv:"Active_Risk"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ParameterSearchFileName, err)
	}

	type tuple struct {
		gamma, limit, lambda float64
	}
	seen := map[tuple]bool{}
	out := make([]domain.ParameterResult, 0, len(rows))
	for _, r := range rows {
		key := tuple{gamma: r.Gamma, limit: r.Limit, lambda: r.Lambda}
		if seen[key] {
			return nil, domain.InvariantError{
				Invariant: "parameter tuples unique",
				Detail:    fmt.Sprintf("duplicate (Gamma=%v, Limit=%v, Lambda=%v)", r.Gamma, r.Limit, r.Lambda),
			}
		}
		seen[key] = true
		out = append(out, domain.ParameterResult{
			Gamma:        r.Gamma,
			Limit:        r.Limit,
			Lambda:       r.Lambda,
			Sharpe:       r.Sharpe,
			ActiveReturn: r.ActiveReturn,
			ActiveRisk:   r.ActiveRisk,
		})
	}
	return out, nil
}
