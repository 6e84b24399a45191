package api

import (
	"github.com/gin-gonic/gin"
)

type correlationMatrixResponse struct {
	IDs    []string    `json:"ids"`
	Values [][]float64 `json:"values"`
}

func (m ApiHandler) correlationMatrix(c *gin.Context) {
	c.JSON(200, correlationMatrixResponse{
		IDs:    m.Dataset.Correlations.IDs,
		Values: m.Dataset.Correlations.Values,
	})
}
