package repository

import (
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"

	"github.com/gocarina/gocsv"
)

const StockDetailFileName = "stock_details.csv"

type StockDetailRepository interface {
	Load() ([]domain.StockDetail, error)
}

func NewStockDetailRepository(dataDir string) StockDetailRepository {
	return stockDetailRepositoryHandler{
		Path: filepath.Join(dataDir, StockDetailFileName),
	}
}

type stockDetailRepositoryHandler struct {
	Path string
}

func (h stockDetailRepositoryHandler) Load() ([]domain.StockDetail, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		ID           string  `csv:"ID"`
		Industry     string  `csv:"Industry"`
		RealizedRet  float64 `csv:"Realized_Ret"`
		ActiveWeight float64 `csv:"Active_Weight"`
		Contribution float64 `csv:"Contribution"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", StockDetailFileName, err)
	}

	seen := map[string]bool{}
	out := make([]domain.StockDetail, 0, len(rows))
	for _, r := range rows {
		if seen[r.ID] {
			return nil, domain.InvariantError{
				Invariant: "one detail row per holding",
				Detail:    fmt.Sprintf("duplicate id %q", r.ID),
			}
		}
		seen[r.ID] = true
		out = append(out, domain.StockDetail{
			ID:           r.ID,
			Industry:     r.Industry,
			RealizedRet:  r.RealizedRet,
			ActiveWeight: r.ActiveWeight,
			Contribution: r.Contribution,
		})
	}
	return out, nil
}
