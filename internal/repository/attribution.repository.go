package repository

import (
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"

	"github.com/gocarina/gocsv"
)

const AttributionFileName = "attribution_results.csv"

type AttributionRepository interface {
	Load() ([]domain.AttributionRow, error)
}

func NewAttributionRepository(dataDir string) AttributionRepository {
	return attributionRepositoryHandler{
		Path: filepath.Join(dataDir, AttributionFileName),
	}
}

type attributionRepositoryHandler struct {
	Path string
}

func (h attributionRepositoryHandler) Load() ([]domain.AttributionRow, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		Sector      string  `csv:"Sector"`
		Allocation  float64 `csv:"Allocation"`
		Selection   float64 `csv:"Selection"`
		Interaction float64 `csv:"Interaction"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AttributionFileName, err)
	}

	seen := map[string]bool{}
	out := make([]domain.AttributionRow, 0, len(rows))
	for _, r := range rows {
		if seen[r.Sector] {
			return nil, domain.InvariantError{
				Invariant: "one attribution row per sector",
				Detail:    fmt.Sprintf("duplicate sector %q", r.Sector),
			}
		}
		seen[r.Sector] = true
		out = append(out, domain.AttributionRow{
			Sector:      r.Sector,
			Allocation:  r.Allocation,
			Selection:   r.Selection,
			Interaction: r.Interaction,
		})
	}
	return out, nil
}
