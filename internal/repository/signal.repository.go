package repository

import (
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"

	"github.com/gocarina/gocsv"
)

const SignalFileName = "raw_signals.csv"

type SignalRepository interface {
	Load() ([]domain.SignalRow, error)
}

func NewSignalRepository(dataDir string) SignalRepository {
	return signalRepositoryHandler{
		Path: filepath.Join(dataDir, SignalFileName),
	}
}

type signalRepositoryHandler struct {
	Path string
}

func (h signalRepositoryHandler) Load() ([]domain.SignalRow, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		ID          string  `csv:"ID"`
		Industry    string  `csv:"Industry"`
		AlphaSignal float64 `csv:"Alpha_Signal"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SignalFileName, err)
	}

	seen := map[string]bool{}
	out := make([]domain.SignalRow, 0, len(rows))
	for _, r := range rows {
		if seen[r.ID] {
			return nil, domain.InvariantError{
				Invariant: "one signal row per holding",
				Detail:    fmt.Sprintf("duplicate id %q", r.ID),
			}
		}
		seen[r.ID] = true
		out = append(out, domain.SignalRow{
			ID:          r.ID,
			Industry:    r.Industry,
			AlphaSignal: r.AlphaSignal,
		})
	}
	return out, nil
}
