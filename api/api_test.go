package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alphadash/internal/domain"
	"alphadash/internal/service"
	"alphadash/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) *service.Dataset {
	t.Helper()

	correlations, err := domain.NewCorrelationMatrix(
		[]string{"AAPL", "XOM"},
		[][]float64{{1, 0.2}, {0.2, 1}},
	)
	require.NoError(t, err)

	dates := []time.Time{
		util.NewDate(2024, 1, 1),
		util.NewDate(2024, 1, 2),
		util.NewDate(2024, 1, 3),
	}
	assetNav, err := domain.NewNavTable(dates, []string{"AAPL", "XOM"}, [][]float64{
		{1.0, 1.0},
		{1.01, 0.99},
		{1.03, 0.98},
	})
	require.NoError(t, err)

	performance, err := domain.NewNavTable(dates,
		append(domain.StrategyColumns(), domain.ColumnActiveReturn),
		[][]float64{
			{1.0, 1.0, 1.0, 1.0, 0.0},
			{1.004, 1.005, 1.007, 1.006, 0.003},
			{1.002, 1.006, 1.009, 1.004, 0.007},
		})
	require.NoError(t, err)

	return &service.Dataset{
		SessionID: uuid.New(),
		Signals: []domain.SignalRow{
			{ID: "AAPL", Industry: "Technology", AlphaSignal: 0.05},
			{ID: "XOM", Industry: "Energy", AlphaSignal: -0.01},
		},
		HoldingWeights: []domain.HoldingWeight{
			{ID: "AAPL", WeightBm: 0.5, WeightPf: 0.6},
			{ID: "XOM", WeightBm: 0.5, WeightPf: 0.4},
		},
		SectorWeights: []domain.SectorWeight{
			{Sector: "Technology", WeightBm: 0.5, WeightPf: 0.6},
			{Sector: "Energy", WeightBm: 0.5, WeightPf: 0.4},
		},
		StockDetails: []domain.StockDetail{
			{ID: "AAPL", Industry: "Technology", RealizedRet: 0.04, ActiveWeight: 0.1, Contribution: 0.002},
			{ID: "XOM", Industry: "Energy", RealizedRet: -0.02, ActiveWeight: -0.1, Contribution: -0.001},
		},
		Correlations: correlations,
		AssetNav:     assetNav,
		Performance:  performance,
		Attribution: []domain.AttributionRow{
			{Sector: "Technology", Allocation: 0.001, Selection: 0.002, Interaction: 0.0005},
			{Sector: "Energy", Allocation: -0.0005, Selection: 0.001, Interaction: 0.0002},
		},
		ParameterSearch: []domain.ParameterResult{
			{Gamma: 0.5, Limit: 0.01, Lambda: 0.00005, Sharpe: 1.1, ActiveReturn: 0.02, ActiveRisk: 0.018},
			{Gamma: 1.0, Limit: 0.01, Lambda: 0.00005, Sharpe: 0.9, ActiveReturn: 0.015, ActiveRisk: 0.017},
			{Gamma: 0.5, Limit: 0.01, Lambda: 0.001, Sharpe: 2.5, ActiveReturn: 0.04, ActiveRisk: 0.01},
		},
	}
}

func doRequest(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := ApiHandler{
		Dataset:   testDataset(t),
		LambdaMax: 0.0001,
	}
	router := handler.InitializeRouterEngine()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	body := map[string]interface{}{}
	if w.Code == http.StatusOK && len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestParameterGridResolver(t *testing.T) {
	t.Run("defaults to sharpe and filters lambda", func(t *testing.T) {
		w, body := doRequest(t, "/parameterGrid")
		require.Equal(t, 200, w.Code)
		require.Equal(t, "Sharpe", body["metric"])
		require.Equal(t, []interface{}{0.5, 1.0}, body["rows"])
		require.Equal(t, []interface{}{0.01}, body["cols"])
	})

	t.Run("unknown metric is a config error", func(t *testing.T) {
		w, _ := doRequest(t, "/parameterGrid?metric=Drawdown")
		require.Equal(t, 400, w.Code)
	})
}

func TestAttributionResolver(t *testing.T) {
	t.Run("total is the sum of the effects", func(t *testing.T) {
		w, body := doRequest(t, "/attribution?effect=Total")
		require.Equal(t, 200, w.Code)

		sectors := body["sectors"].([]interface{})
		require.Len(t, sectors, 2)
		energy := sectors[0].(map[string]interface{})
		require.Equal(t, "Energy", energy["sector"])
		require.InDelta(t, 0.0007, energy["value"].(float64), 1e-9)
	})

	t.Run("unknown effect is a config error", func(t *testing.T) {
		w, _ := doRequest(t, "/attribution?effect=Momentum")
		require.Equal(t, 400, w.Code)
	})
}

func TestContributionTableResolver(t *testing.T) {
	w, _ := doRequest(t, "/contributionTable")
	require.Equal(t, 200, w.Code)

	var rows []map[string]string
	handler := ApiHandler{Dataset: testDataset(t), LambdaMax: 0.0001}
	router := handler.InitializeRouterEngine()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/contributionTable", nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))

	require.Len(t, rows, 2)
	require.Equal(t, "AAPL", rows[0]["id"])
	require.Equal(t, "Overweight", rows[0]["position"])
	require.Equal(t, "+10.00%", rows[0]["activeWeight"])
	require.Equal(t, "4.00%", rows[0]["realizedRet"])
	require.Equal(t, "+0.2000%", rows[0]["contribution"])
	require.Equal(t, "Underweight", rows[1]["position"])
	require.Equal(t, "-0.1000%", rows[1]["contribution"])
}

func TestPerformanceResolver(t *testing.T) {
	t.Run("out-of-bounds range clamps", func(t *testing.T) {
		w, body := doRequest(t, "/performance?start=2020-01-01&end=2030-01-01")
		require.Equal(t, 200, w.Code)

		dates := body["dates"].([]interface{})
		require.Len(t, dates, 3)
		require.Equal(t, "2024-01-01", dates[0])
		require.Equal(t, "2024-01-03", dates[2])
	})

	t.Run("malformed date is a bad request", func(t *testing.T) {
		w, _ := doRequest(t, "/performance?start=01/02/2024")
		require.Equal(t, 400, w.Code)
	})
}

func TestInformationCoefficientResolver(t *testing.T) {
	w, body := doRequest(t, "/informationCoefficient")
	require.Equal(t, 200, w.Code)

	// two holdings, perfectly ordered signal: correlation is exactly 1
	require.InDelta(t, 1.0, body["informationCoefficient"].(float64), 1e-9)
	require.Len(t, body["holdings"].([]interface{}), 2)
}

func TestWeightHierarchyResolver(t *testing.T) {
	t.Run("serves the joined hierarchy", func(t *testing.T) {
		w, body := doRequest(t, "/weightHierarchy")
		require.Equal(t, 200, w.Code)
		require.Len(t, body["holdings"].([]interface{}), 2)
		require.Len(t, body["industries"].([]interface{}), 2)
	})

	t.Run("join mismatch fails just this view", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		ds := testDataset(t)
		ds.HoldingWeights[0].ID = "TSLA"

		handler := ApiHandler{Dataset: ds, LambdaMax: 0.0001}
		router := handler.InitializeRouterEngine()

		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/weightHierarchy", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)
		require.Equal(t, 422, w.Code)

		// other views still serve off the same dataset
		w = httptest.NewRecorder()
		req, err = http.NewRequest(http.MethodGet, "/contributionTable", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	})
}
