package api

import (
	"alphadash/internal/preparer"

	"github.com/gin-gonic/gin"
)

// weightHierarchy feeds the Industry > ID drill-down charts: one node per
// holding plus per-industry subtotals, for both weight columns.
func (m ApiHandler) weightHierarchy(c *gin.Context) {
	hierarchy, err := preparer.PrepareWeightHierarchy(m.Dataset.Signals, m.Dataset.HoldingWeights)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, hierarchy)
}

func (m ApiHandler) sectorWeights(c *gin.Context) {
	c.JSON(200, preparer.ComputeActiveWeights(m.Dataset.SectorWeights))
}
