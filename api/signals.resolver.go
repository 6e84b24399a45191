package api

import (
	"alphadash/internal/preparer"

	"github.com/gin-gonic/gin"
)

type informationCoefficientResponse struct {
	InformationCoefficient float64                   `json:"informationCoefficient"`
	Holdings               []preparer.SignalRealized `json:"holdings"`
}

// informationCoefficient returns the IC plus the joined expected-vs-realized
// rows behind the scatter, so the chart and the headline number stay
// consistent with each other.
func (m ApiHandler) informationCoefficient(c *gin.Context) {
	ic, err := preparer.InformationCoefficient(m.Dataset.Signals, m.Dataset.StockDetails)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	joined, err := preparer.JoinSignalRealized(m.Dataset.Signals, m.Dataset.StockDetails)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, informationCoefficientResponse{
		InformationCoefficient: ic,
		Holdings:               joined,
	})
}

type signalRankingRow struct {
	ID          string  `json:"id"`
	Industry    string  `json:"industry"`
	AlphaSignal float64 `json:"alphaSignal"`
}

// signalRanking orders the holdings by alpha signal for the bar chart. The
// dashboard's default is ascending, lowest conviction first.
func (m ApiHandler) signalRanking(c *gin.Context) {
	ascending := c.DefaultQuery("ascending", "true") != "false"

	ranked := preparer.RankBySignal(m.Dataset.Signals, ascending)
	out := make([]signalRankingRow, len(ranked))
	for i, r := range ranked {
		out[i] = signalRankingRow{
			ID:          r.ID,
			Industry:    r.Industry,
			AlphaSignal: r.AlphaSignal,
		}
	}
	c.JSON(200, out)
}
