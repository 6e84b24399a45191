// Package repository loads the precomputed input files. Each repository owns
// one file, parses it into typed rows, and validates the file's declared
// invariants at this boundary - nothing downstream coerces or re-checks.
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"alphadash/internal/domain"
)

func parseFloat(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("bad float %q", cell)
	}
	return v, nil
}

// openInput opens a required input file. Absence is a MissingFileError, which
// halts startup before anything renders.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.MissingFileError{Path: filepath.Base(path), Err: err}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// readWideTable reads a date-indexed table whose column set is not known at
// compile time (one column per asset). gocsv wants a fixed struct per row, so
// these two files go through encoding/csv directly.
func readWideTable(path string) (*domain.NavTable, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, domain.InvariantError{
			Invariant: "table non-empty",
			Detail:    fmt.Sprintf("%s has no data rows", filepath.Base(path)),
		}
	}

	columns := records[0][1:]
	dates := make([]time.Time, 0, len(records)-1)
	values := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		date, err := time.Parse(time.DateOnly, record[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad date %q: %w", filepath.Base(path), i+2, record[0], err)
		}
		row := make([]float64, len(record)-1)
		for j, cell := range record[1:] {
			v, err := parseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %q: %w", filepath.Base(path), i+2, columns[j], err)
			}
			row[j] = v
		}
		dates = append(dates, date)
		values = append(values, row)
	}

	return domain.NewNavTable(dates, columns, values)
}
