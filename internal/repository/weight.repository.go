package repository

import (
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"

	"github.com/gocarina/gocsv"
)

const (
	HoldingWeightFileName = "PortfolioBenchmarkWeights.csv"
	SectorWeightFileName  = "sector_weights.csv"
)

type HoldingWeightRepository interface {
	Load() ([]domain.HoldingWeight, error)
}

func NewHoldingWeightRepository(dataDir string) HoldingWeightRepository {
	return holdingWeightRepositoryHandler{
		Path: filepath.Join(dataDir, HoldingWeightFileName),
	}
}

type holdingWeightRepositoryHandler struct {
	Path string
}

func (h holdingWeightRepositoryHandler) Load() ([]domain.HoldingWeight, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		ID       string  `csv:"ID"`
		WeightBm float64 `csv:"WeightBm"`
		WeightPf float64 `csv:"WeightPf"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", HoldingWeightFileName, err)
	}

	seen := map[string]bool{}
	out := make([]domain.HoldingWeight, 0, len(rows))
	for _, r := range rows {
		if seen[r.ID] {
			return nil, domain.InvariantError{
				Invariant: "one weight row per holding",
				Detail:    fmt.Sprintf("duplicate id %q", r.ID),
			}
		}
		seen[r.ID] = true
		if err := checkWeightRange(r.ID, "WeightBm", r.WeightBm); err != nil {
			return nil, err
		}
		if err := checkWeightRange(r.ID, "WeightPf", r.WeightPf); err != nil {
			return nil, err
		}
		out = append(out, domain.HoldingWeight{
			ID:       r.ID,
			WeightBm: r.WeightBm,
			WeightPf: r.WeightPf,
		})
	}
	return out, nil
}

func checkWeightRange(key, column string, w float64) error {
	if w < 0 || w > 1 {
		return domain.InvariantError{
			Invariant: "weights in [0, 1]",
			Detail:    fmt.Sprintf("%s for %q is %v", column, key, w),
		}
	}
	return nil
}

type SectorWeightRepository interface {
	Load() ([]domain.SectorWeight, error)
}

func NewSectorWeightRepository(dataDir string) SectorWeightRepository {
	return sectorWeightRepositoryHandler{
		Path: filepath.Join(dataDir, SectorWeightFileName),
	}
}

type sectorWeightRepositoryHandler struct {
	Path string
}

func (h sectorWeightRepositoryHandler) Load() ([]domain.SectorWeight, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		Sector   string  `csv:"Sector"`
		WeightBm float64 `csv:"WeightBm"`
		WeightPf float64 `csv:"WeightPf"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SectorWeightFileName, err)
	}

	seen := map[string]bool{}
	out := make([]domain.SectorWeight, 0, len(rows))
	for _, r := range rows {
		if seen[r.Sector] {
			return nil, domain.InvariantError{
				Invariant: "one weight row per sector",
				Detail:    fmt.Sprintf("duplicate sector %q", r.Sector),
			}
		}
		seen[r.Sector] = true
		if err := checkWeightRange(r.Sector, "WeightBm", r.WeightBm); err != nil {
			return nil, err
		}
		if err := checkWeightRange(r.Sector, "WeightPf", r.WeightPf); err != nil {
			return nil, err
		}
		out = append(out, domain.SectorWeight{
			Sector:   r.Sector,
			WeightBm: r.WeightBm,
			WeightPf: r.WeightPf,
		})
	}
	return out, nil
}
