package api

import (
	"alphadash/internal/domain"
	"alphadash/internal/preparer"

	"github.com/gin-gonic/gin"
)

type parameterGridResponse struct {
	Metric string       `json:"metric"`
	Rows   []float64    `json:"rows"`
	Cols   []float64    `json:"cols"`
	Values [][]*float64 `json:"values"`
}

// parameterGrid pivots the Lambda-filtered search results into a Gamma x
// Limit heatmap of the selected metric. The metric comes from a closed set;
// anything else is rejected before any data is touched.
func (m ApiHandler) parameterGrid(c *gin.Context) {
	metric, err := domain.ParseMetric(c.DefaultQuery("metric", string(domain.MetricSharpe)))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	grid, err := preparer.PivotParameterGrid(
		m.Dataset.ParameterSearch,
		m.LambdaMax,
		domain.AxisGamma,
		domain.AxisLimit,
		metric.PivotValue(),
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, parameterGridResponse{
		Metric: string(metric),
		Rows:   grid.Rows,
		Cols:   grid.Cols,
		Values: grid.Dense(),
	})
}

type activeFrontierRow struct {
	Gamma        float64 `json:"gamma"`
	Limit        float64 `json:"limit"`
	Sharpe       float64 `json:"sharpe"`
	ActiveReturn float64 `json:"activeReturn"`
	ActiveRisk   float64 `json:"activeRisk"`
}

// activeFrontier serves the tracking-error vs alpha scatter over the same
// Lambda-filtered rows the grid uses.
func (m ApiHandler) activeFrontier(c *gin.Context) {
	rows := preparer.ActiveFrontier(m.Dataset.ParameterSearch, m.LambdaMax)
	out := make([]activeFrontierRow, len(rows))
	for i, r := range rows {
		out[i] = activeFrontierRow{
			Gamma:        r.Gamma,
			Limit:        r.Limit,
			Sharpe:       r.Sharpe,
			ActiveReturn: r.ActiveReturn,
			ActiveRisk:   r.ActiveRisk,
		}
	}
	c.JSON(200, out)
}
