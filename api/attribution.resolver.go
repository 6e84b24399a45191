package api

import (
	"alphadash/internal/domain"
	"alphadash/internal/preparer"
	"alphadash/internal/util"

	"github.com/gin-gonic/gin"
)

type attributionResponse struct {
	Effect  string                  `json:"effect"`
	Sectors []preparer.SectorEffect `json:"sectors"`
}

// attribution serves the Brinson-Fachler decomposition for one effect, or
// the per-sector total when Total is selected.
func (m ApiHandler) attribution(c *gin.Context) {
	effect, err := domain.ParseEffect(c.DefaultQuery("effect", string(domain.EffectTotal)))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, attributionResponse{
		Effect:  string(effect),
		Sectors: preparer.AttributionByEffect(m.Dataset.Attribution, effect),
	})
}

type contributionTableRow struct {
	ID           string `json:"id"`
	Industry     string `json:"industry"`
	Position     string `json:"position"`
	ActiveWeight string `json:"activeWeight"`
	RealizedRet  string `json:"realizedRet"`
	Contribution string `json:"contribution"`
}

// contributionTable serves the ranked stock-level table with the percent
// columns preformatted the way the table widget displays them.
func (m ApiHandler) contributionTable(c *gin.Context) {
	ranked := preparer.RankContributionTable(m.Dataset.StockDetails)

	out := make([]contributionTableRow, len(ranked))
	for i, r := range ranked {
		out[i] = contributionTableRow{
			ID:           r.ID,
			Industry:     r.Industry,
			Position:     string(r.Position),
			ActiveWeight: util.FormatSignedPercent(r.ActiveWeight, 2),
			RealizedRet:  util.FormatPercent(r.RealizedRet, 2),
			Contribution: util.FormatSignedPercent(r.Contribution, 4),
		}
	}
	c.JSON(200, out)
}
