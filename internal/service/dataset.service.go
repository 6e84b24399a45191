package service

import (
	"context"
	"fmt"

	"alphadash/internal/domain"
	"alphadash/internal/logger"
	"alphadash/internal/repository"

	"github.com/google/uuid"
)

// Dataset holds every input table for one dashboard session. It is loaded
// once and read-only afterwards, so concurrent request handlers can share it
// without locks. A failed derived view never mutates it.
type Dataset struct {
	SessionID uuid.UUID

	Signals         []domain.SignalRow
	HoldingWeights  []domain.HoldingWeight
	SectorWeights   []domain.SectorWeight
	StockDetails    []domain.StockDetail
	Correlations    *domain.CorrelationMatrix
	AssetNav        *domain.NavTable
	Performance     *domain.NavTable
	Attribution     []domain.AttributionRow
	ParameterSearch []domain.ParameterResult
}

type DatasetLoader interface {
	Load(ctx context.Context) (*Dataset, error)
}

func NewDatasetLoader(dataDir string) DatasetLoader {
	return datasetLoaderHandler{
		SignalRepository:          repository.NewSignalRepository(dataDir),
		HoldingWeightRepository:   repository.NewHoldingWeightRepository(dataDir),
		SectorWeightRepository:    repository.NewSectorWeightRepository(dataDir),
		StockDetailRepository:     repository.NewStockDetailRepository(dataDir),
		CorrelationRepository:     repository.NewCorrelationRepository(dataDir),
		AssetNavRepository:        repository.NewAssetNavRepository(dataDir),
		PerformanceRepository:     repository.NewPerformanceRepository(dataDir),
		AttributionRepository:     repository.NewAttributionRepository(dataDir),
		ParameterSearchRepository: repository.NewParameterSearchRepository(dataDir),
	}
}

type datasetLoaderHandler struct {
	SignalRepository          repository.SignalRepository
	HoldingWeightRepository   repository.HoldingWeightRepository
	SectorWeightRepository    repository.SectorWeightRepository
	StockDetailRepository     repository.StockDetailRepository
	CorrelationRepository     repository.CorrelationRepository
	AssetNavRepository        repository.AssetNavRepository
	PerformanceRepository     repository.PerformanceRepository
	AttributionRepository     repository.AttributionRepository
	ParameterSearchRepository repository.ParameterSearchRepository
}

// Load reads every required file exactly once. Any missing file or boundary
// invariant failure aborts the whole load - there is no partial dataset.
func (h datasetLoaderHandler) Load(ctx context.Context) (*Dataset, error) {
	log := logger.FromContext(ctx)

	ds := &Dataset{
		SessionID: uuid.New(),
	}

	var err error
	if ds.Signals, err = h.SignalRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load signals: %w", err)
	}
	if ds.HoldingWeights, err = h.HoldingWeightRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load holding weights: %w", err)
	}
	if ds.SectorWeights, err = h.SectorWeightRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load sector weights: %w", err)
	}
	if ds.StockDetails, err = h.StockDetailRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load stock details: %w", err)
	}
	if ds.Correlations, err = h.CorrelationRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load correlation matrix: %w", err)
	}
	if ds.AssetNav, err = h.AssetNavRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load asset nav series: %w", err)
	}
	if ds.Performance, err = h.PerformanceRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load portfolio performance: %w", err)
	}
	if ds.Attribution, err = h.AttributionRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load attribution results: %w", err)
	}
	if ds.ParameterSearch, err = h.ParameterSearchRepository.Load(); err != nil {
		return nil, fmt.Errorf("failed to load parameter search: %w", err)
	}

	log.Infow("dataset loaded",
		"sessionID", ds.SessionID,
		"holdings", len(ds.Signals),
		"sectors", len(ds.Attribution),
		"navDays", len(ds.Performance.Dates),
		"parameterRuns", len(ds.ParameterSearch),
	)

	return ds, nil
}
