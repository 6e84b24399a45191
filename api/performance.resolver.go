package api

import (
	"time"

	"alphadash/internal/domain"

	"github.com/gin-gonic/gin"
)

type navTableResponse struct {
	Dates   []string             `json:"dates"`
	Columns []string             `json:"columns"`
	Series  map[string][]float64 `json:"series"`
}

func newNavTableResponse(table *domain.NavTable) navTableResponse {
	out := navTableResponse{
		Dates:   make([]string, len(table.Dates)),
		Columns: table.Columns,
		Series:  map[string][]float64{},
	}
	for i, d := range table.Dates {
		out.Dates[i] = d.Format(time.DateOnly)
	}
	for j, name := range table.Columns {
		series := make([]float64, len(table.Values))
		for i, row := range table.Values {
			series[i] = row[j]
		}
		out.Series[name] = series
	}
	return out
}

// assetNav serves the per-asset cumulative return lines, clamped to the
// requested date range.
func (m ApiHandler) assetNav(c *gin.Context) {
	start, end, err := dateRangeFromQuery(c, m.Dataset.AssetNav)
	if err != nil {
		returnBadRequestJson(err, c)
		return
	}
	c.JSON(200, newNavTableResponse(m.Dataset.AssetNav.Slice(start, end)))
}

type performanceResponse struct {
	Dates        []string             `json:"dates"`
	Strategies   map[string][]float64 `json:"strategies"`
	ActiveReturn []float64            `json:"activeReturn"`
}

// performance serves the strategy NAV comparison and the cumulative active
// return area series together, on the same clamped date index.
func (m ApiHandler) performance(c *gin.Context) {
	start, end, err := dateRangeFromQuery(c, m.Dataset.Performance)
	if err != nil {
		returnBadRequestJson(err, c)
		return
	}
	sliced := m.Dataset.Performance.Slice(start, end)

	out := performanceResponse{
		Dates:      make([]string, len(sliced.Dates)),
		Strategies: map[string][]float64{},
	}
	for i, d := range sliced.Dates {
		out.Dates[i] = d.Format(time.DateOnly)
	}
	for _, name := range domain.StrategyColumns() {
		series, err := sliced.Column(name)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out.Strategies[name] = series
	}
	activeReturn, err := sliced.Column(domain.ColumnActiveReturn)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	out.ActiveReturn = activeReturn

	c.JSON(200, out)
}
