package repository

import (
	"encoding/csv"
	"fmt"
	"path/filepath"

	"alphadash/internal/domain"
)

const CorrelationFileName = "correlation_matrix.csv"

type CorrelationRepository interface {
	Load() (*domain.CorrelationMatrix, error)
}

func NewCorrelationRepository(dataDir string) CorrelationRepository {
	return correlationRepositoryHandler{
		Path: filepath.Join(dataDir, CorrelationFileName),
	}
}

type correlationRepositoryHandler struct {
	Path string
}

// Load reads the square matrix. The header holds the column IDs and the first
// cell of each row holds the row ID; symmetry, unit diagonal, and the [-1, 1]
// range are validated on construction.
func (h correlationRepositoryHandler) Load() (*domain.CorrelationMatrix, error) {
	f, err := openInput(h.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", CorrelationFileName, err)
	}
	if len(records) < 2 {
		return nil, domain.InvariantError{
			Invariant: "correlation matrix non-empty",
			Detail:    CorrelationFileName + " has no data rows",
		}
	}

	ids := records[0][1:]
	if len(records)-1 != len(ids) {
		return nil, domain.InvariantError{
			Invariant: "correlation matrix square",
			Detail:    fmt.Sprintf("%d columns but %d rows", len(ids), len(records)-1),
		}
	}
	values := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if record[0] != ids[i] {
			return nil, domain.InvariantError{
				Invariant: "correlation row order matches columns",
				Detail:    fmt.Sprintf("row %d is %q, want %q", i+1, record[0], ids[i]),
			}
		}
		row := make([]float64, len(record)-1)
		for j, cell := range record[1:] {
			v, err := parseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("%s cell (%q, %q): %w", CorrelationFileName, record[0], ids[j], err)
			}
			row[j] = v
		}
		values = append(values, row)
	}

	return domain.NewCorrelationMatrix(ids, values)
}
