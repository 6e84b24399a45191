package repository

import (
	"path/filepath"

	"alphadash/internal/domain"
)

const (
	AssetNavFileName    = "stock_cumulative_returns.csv"
	PerformanceFileName = "portfolio_performance.csv"
)

// AssetNavRepository loads the per-asset cumulative return series. The column
// set is one column per asset and is taken from the header.
type AssetNavRepository interface {
	Load() (*domain.NavTable, error)
}

func NewAssetNavRepository(dataDir string) AssetNavRepository {
	return assetNavRepositoryHandler{
		Path: filepath.Join(dataDir, AssetNavFileName),
	}
}

type assetNavRepositoryHandler struct {
	Path string
}

func (h assetNavRepositoryHandler) Load() (*domain.NavTable, error) {
	table, err := readWideTable(h.Path)
	if err != nil {
		return nil, err
	}
	if err := table.RequirePositive(table.Columns...); err != nil {
		return nil, err
	}
	return table, nil
}

// PerformanceRepository loads the per-strategy NAV comparison plus the
// cumulative active return series. The strategy columns are fixed; the
// active return column may be negative, so only the NAVs are checked for
// positivity.
type PerformanceRepository interface {
	Load() (*domain.NavTable, error)
}

func NewPerformanceRepository(dataDir string) PerformanceRepository {
	return performanceRepositoryHandler{
		Path: filepath.Join(dataDir, PerformanceFileName),
	}
}

type performanceRepositoryHandler struct {
	Path string
}

func (h performanceRepositoryHandler) Load() (*domain.NavTable, error) {
	table, err := readWideTable(h.Path)
	if err != nil {
		return nil, err
	}
	for _, required := range append(domain.StrategyColumns(), domain.ColumnActiveReturn) {
		if _, err := table.Column(required); err != nil {
			return nil, domain.InvariantError{
				Invariant: "performance columns present",
				Detail:    err.Error(),
			}
		}
	}
	if err := table.RequirePositive(domain.StrategyColumns()...); err != nil {
		return nil, err
	}
	return table, nil
}
