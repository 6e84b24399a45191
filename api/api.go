package api

import (
	"errors"
	"fmt"
	"time"

	"alphadash/internal/domain"
	"alphadash/internal/service"
	"alphadash/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApiHandler serves the prepared display data to the rendering layer. The
// Dataset is immutable for the life of the process, so handlers read it
// without locking. A failing view returns an error for that view only;
// every other endpoint keeps serving.
type ApiHandler struct {
	Dataset *service.Dataset

	// pivot filter bound: only search rows with Lambda below this render
	LambdaMax float64
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to alphadash"})
	})
	router.GET("/weightHierarchy", m.weightHierarchy)
	router.GET("/sectorWeights", m.sectorWeights)
	router.GET("/informationCoefficient", m.informationCoefficient)
	router.GET("/signalRanking", m.signalRanking)
	router.GET("/correlationMatrix", m.correlationMatrix)
	router.GET("/assetNav", m.assetNav)
	router.GET("/performance", m.performance)
	router.GET("/parameterGrid", m.parameterGrid)
	router.GET("/activeFrontier", m.activeFrontier)
	router.GET("/attribution", m.attribution)
	router.GET("/contributionTable", m.contributionTable)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps the failure taxonomy onto status codes: bad selectors
// and malformed dates are the caller's fault (400), data errors fail the view
// (422), anything else is a 500. The body always carries the error string so
// the rendering layer can show it on the affected widget.
func returnErrorJson(err error, c *gin.Context) {
	var selectorErr domain.InvalidSelectorError
	if errors.As(err, &selectorErr) {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	var (
		joinErr     domain.JoinMismatchError
		invErr      domain.InvariantError
		dataErr     domain.InsufficientDataError
		dupCellErr  domain.DuplicateCellError
		missingFile domain.MissingFileError
	)
	if errors.As(err, &joinErr) || errors.As(err, &invErr) ||
		errors.As(err, &dataErr) || errors.As(err, &dupCellErr) ||
		errors.As(err, &missingFile) {
		c.AbortWithStatusJSON(422, gin.H{"error": err.Error()})
		return
	}

	c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
}

func returnBadRequestJson(err error, c *gin.Context) {
	c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	zap.S().Infow("handled request",
		"sessionID", m.Dataset.SessionID,
		"path", ctx.Request.URL.Path,
		"query", ctx.Request.URL.RawQuery,
		"status", ctx.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)
}

// dateRangeFromQuery reads the optional start/end query params. Missing
// params fall back to the table bounds; out-of-bounds values get clamped
// later by NavTable.Slice.
func dateRangeFromQuery(c *gin.Context, table *domain.NavTable) (time.Time, time.Time, error) {
	start := table.Start()
	end := table.End()

	if s := c.Query("start"); s != "" {
		parsed, err := util.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := util.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	return start, end, nil
}
