package util

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date, the index format of every
// date-indexed input file and of the date-range query parameters.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
