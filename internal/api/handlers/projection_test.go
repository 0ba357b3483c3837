package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"energy-dashboard/internal/api/models"
	"energy-dashboard/internal/data"
	"energy-dashboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []model.GenerationRecord {
	return []model.GenerationRecord{
		{Year: 2021, SolarMWh: 1000, WindOnshoreMWh: 2000, WindOffshoreMWh: 500},
		{Year: 2022, SolarMWh: 1100, WindOnshoreMWh: 2200, WindOffshoreMWh: 550},
		{Year: 2023, SolarMWh: 1200, WindOnshoreMWh: 2400, WindOffshoreMWh: 600},
		{Year: 2024, SolarMWh: 1300, WindOnshoreMWh: 2600, WindOffshoreMWh: 650},
		{Year: 2025, SolarMWh: 1400, WindOnshoreMWh: 2800, WindOffshoreMWh: 700},
	}
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	series := testSeries()
	ds := &data.Dataset{Generation: series}

	projectionHandler := NewProjectionHandler(series, log)
	historyHandler := NewHistoryHandler(ds, 0, 0)

	router := gin.New()
	router.GET("/health", Health)
	api := router.Group("/api/v1")
	{
		api.GET("/history/generation", historyHandler.GetGeneration)
		api.GET("/history/summary", historyHandler.GetSummary)
		api.GET("/methods", ListMethods)
		api.GET("/scenarios", ListScenarios)
		api.POST("/projection", projectionHandler.RunProjection)
		api.POST("/projection/compare/methods", projectionHandler.CompareMethods)
		api.POST("/projection/compare/scenarios", projectionHandler.CompareScenarios)
		api.GET("/projection/export", projectionHandler.ExportCSV)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestRunProjectionOK(t *testing.T) {
	router := testRouter()

	w := postJSON(t, router, "/api/v1/projection", models.ProjectionRequest{
		Method:            "latest_year",
		Scenario:          "business_as_usual",
		IncludeMilestones: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "latest_year", resp.Method)
	assert.Equal(t, "business_as_usual", resp.Scenario)
	assert.False(t, resp.UsedFallback)
	assert.Equal(t, 2025, resp.Baseline.ReferenceYear)
	require.Len(t, resp.Records, 25)
	assert.Equal(t, 2026, resp.Records[0].Year)
	assert.InDelta(t, 1400*1.075, resp.Records[0].SolarMWh, 1e-6)
	assert.NotEmpty(t, resp.Milestones)
}

func TestRunProjectionCustomScenario(t *testing.T) {
	router := testRouter()
	solar, onshore, offshore := 0.10, 0.05, 0.15

	w := postJSON(t, router, "/api/v1/projection", models.ProjectionRequest{
		Method:   "recent_average_3",
		Scenario: "custom",
		Custom: &models.CustomRatesPayload{
			SolarGrowth:        &solar,
			WindOnshoreGrowth:  &onshore,
			WindOffshoreGrowth: &offshore,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "custom", resp.Scenario)
	// 3-year average baseline: (1200+1300+1400)/3.
	assert.InDelta(t, 1300, resp.Baseline.SolarMWh, 1e-9)
}

func TestRunProjectionErrors(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		body   models.ProjectionRequest
		status int
		code   string
	}{
		{
			"unknown method",
			models.ProjectionRequest{Method: "moving_average", Scenario: "ambitious"},
			http.StatusBadRequest, "UNKNOWN_METHOD",
		},
		{
			"unknown scenario",
			models.ProjectionRequest{Method: "latest_year", Scenario: "moonshot"},
			http.StatusBadRequest, "UNKNOWN_PRESET",
		},
		{
			"custom without rates",
			models.ProjectionRequest{Method: "latest_year", Scenario: "custom"},
			http.StatusBadRequest, "MISSING_PARAMETER",
		},
		{
			"horizon before reference year",
			models.ProjectionRequest{Method: "latest_year", Scenario: "ambitious", HorizonYear: 2020},
			http.StatusBadRequest, "INVALID_HORIZON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/projection", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestRunProjectionMissingFields(t *testing.T) {
	router := testRouter()

	w := postJSON(t, router, "/api/v1/projection", gin.H{"method": "latest_year"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestCompareMethodsEndpoint(t *testing.T) {
	router := testRouter()

	w := postJSON(t, router, "/api/v1/projection/compare/methods", models.CompareMethodsRequest{
		Scenario: "conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 4)
	for _, m := range model.AllMethods() {
		assert.Contains(t, resp.Results, m.String())
	}
}

func TestCompareScenariosEndpoint(t *testing.T) {
	router := testRouter()

	w := postJSON(t, router, "/api/v1/projection/compare/scenarios", models.CompareScenariosRequest{
		Method: "full_trend",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 3)
	assert.Contains(t, resp.Results, "ambitious")
}

func TestExportCSVEndpoint(t *testing.T) {
	router := testRouter()

	w := getPath(router, "/api/v1/projection/export?method=latest_year&scenario=ambitious")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ambitious_latest_year_scenario_2026_2050.csv")

	body := w.Body.String()
	assert.Contains(t, body, "year,solar_mwh,wind_onshore_mwh,wind_offshore_mwh,total_renewable_mwh,renewable_share_pct,scenario,method")
	assert.Contains(t, body, "2050")
}

func TestExportCSVRejectsUnknownScenario(t *testing.T) {
	router := testRouter()

	w := getPath(router, "/api/v1/projection/export?method=latest_year&scenario=moonshot")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_PRESET", errorCode(t, w))
}

func TestListMethodsAndScenarios(t *testing.T) {
	router := testRouter()

	w := getPath(router, "/api/v1/methods")
	require.Equal(t, http.StatusOK, w.Code)
	var methods struct {
		Methods []models.MethodInfo `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &methods))
	assert.Len(t, methods.Methods, 4)

	w = getPath(router, "/api/v1/scenarios")
	require.Equal(t, http.StatusOK, w.Code)
	var scenarios struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scenarios))
	require.Len(t, scenarios.Scenarios, 4)
	require.NotNil(t, scenarios.Scenarios[1].Parameters)
	assert.InDelta(t, 0.075, scenarios.Scenarios[1].Parameters.SolarGrowth, 1e-9)
}

func TestHistoryGenerationEndpoint(t *testing.T) {
	router := testRouter()

	w := getPath(router, "/api/v1/history/generation?from=2023&to=2024")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SeriesResponse[model.GenerationRecord]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, 2023, resp.Rows[0].Year)

	w = getPath(router, "/api/v1/history/generation?from=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getPath(router, "/api/v1/history/generation?from=2025&to=2020")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	w := getPath(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
