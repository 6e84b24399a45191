package domain

import (
	"fmt"
	"math"
)

// CorrelationMatrix is the pairwise correlation of holdings, dense and
// row-major. IDs gives both the row and column order.
type CorrelationMatrix struct {
	IDs    []string
	Values [][]float64

	index map[string]int
}

func NewCorrelationMatrix(ids []string, values [][]float64) (*CorrelationMatrix, error) {
	m := &CorrelationMatrix{
		IDs:    ids,
		Values: values,
		index:  make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if _, ok := m.index[id]; ok {
			return nil, InvariantError{
				Invariant: "correlation ids unique",
				Detail:    fmt.Sprintf("duplicate id %q", id),
			}
		}
		m.index[id] = i
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

const correlationTolerance = 1e-9

func (m *CorrelationMatrix) validate() error {
	n := len(m.IDs)
	if len(m.Values) != n {
		return InvariantError{
			Invariant: "correlation matrix square",
			Detail:    fmt.Sprintf("%d ids but %d rows", n, len(m.Values)),
		}
	}
	for i, row := range m.Values {
		if len(row) != n {
			return InvariantError{
				Invariant: "correlation matrix square",
				Detail:    fmt.Sprintf("row %q has %d columns, want %d", m.IDs[i], len(row), n),
			}
		}
		if math.Abs(row[i]-1) > correlationTolerance {
			return InvariantError{
				Invariant: "correlation diagonal = 1",
				Detail:    fmt.Sprintf("diagonal for %q is %v", m.IDs[i], row[i]),
			}
		}
		for j, v := range row {
			if v < -1-correlationTolerance || v > 1+correlationTolerance {
				return InvariantError{
					Invariant: "correlation in [-1, 1]",
					Detail:    fmt.Sprintf("cell (%q, %q) is %v", m.IDs[i], m.IDs[j], v),
				}
			}
			if math.Abs(v-m.Values[j][i]) > correlationTolerance {
				return InvariantError{
					Invariant: "correlation symmetric",
					Detail:    fmt.Sprintf("cell (%q, %q) is %v but (%q, %q) is %v", m.IDs[i], m.IDs[j], v, m.IDs[j], m.IDs[i], m.Values[j][i]),
				}
			}
		}
	}
	return nil
}

// At returns the correlation between two holdings.
func (m *CorrelationMatrix) At(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("correlation matrix has no id %q", a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("correlation matrix has no id %q", b)
	}
	return m.Values[i][j], nil
}
