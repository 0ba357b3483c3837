package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"energy-dashboard/internal/api/models"
	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProjectionHandler serves the scenario-projection endpoints. It holds the
// historical generation series loaded at startup; the core functions it
// calls are pure, so the handler is safe for concurrent requests.
type ProjectionHandler struct {
	series []model.GenerationRecord
	log    zerolog.Logger
}

func NewProjectionHandler(series []model.GenerationRecord, log zerolog.Logger) *ProjectionHandler {
	return &ProjectionHandler{series: series, log: log}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	method, err := model.ParseMethod(req.Method)
	if err != nil {
		writeError(c, err)
		return
	}
	preset, err := model.ParsePreset(req.Scenario)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := projection.Run(h.series, projection.Request{
		Method:        method,
		Preset:        preset,
		Custom:        customRates(req.Custom),
		HorizonYear:   req.HorizonYear,
		AllowFallback: true,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if result.UsedFallback {
		h.log.Warn().
			Str("method", result.Method).
			Msg("series too short for method, using documented fallback baseline")
	}

	resp := models.ProjectionResponse{
		Method:       result.Method,
		Scenario:     result.Scenario,
		Baseline:     result.Baseline,
		UsedFallback: result.UsedFallback,
		Records:      result.Records,
	}
	if req.IncludeMilestones {
		resp.Milestones = projection.Milestones(result.Records, nil)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareMethods handles POST /api/v1/projection/compare/methods
func (h *ProjectionHandler) CompareMethods(c *gin.Context) {
	var req models.CompareMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	preset, err := model.ParsePreset(req.Scenario)
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := projection.CompareMethods(h.series, preset, customRates(req.Custom), req.HorizonYear)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CompareResponse{Results: results})
}

// CompareScenarios handles POST /api/v1/projection/compare/scenarios
func (h *ProjectionHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	method, err := model.ParseMethod(req.Method)
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := projection.CompareScenarios(h.series, method, customRates(req.Custom), req.HorizonYear)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CompareResponse{Results: results})
}

// ExportCSV handles GET /api/v1/projection/export
//
// Query: method, scenario, horizon_year (optional), and for custom scenarios
// solar_growth / wind_onshore_growth / wind_offshore_growth as fractions.
func (h *ProjectionHandler) ExportCSV(c *gin.Context) {
	method, err := model.ParseMethod(c.Query("method"))
	if err != nil {
		writeError(c, err)
		return
	}
	preset, err := model.ParsePreset(c.Query("scenario"))
	if err != nil {
		writeError(c, err)
		return
	}

	horizon := 0
	if raw := c.Query("horizon_year"); raw != "" {
		horizon, err = strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(c, "INVALID_REQUEST", "horizon_year must be an integer")
			return
		}
	}

	var custom *model.CustomRates
	if preset == model.PresetCustom {
		custom = &model.CustomRates{
			SolarGrowth:        queryFloat(c, "solar_growth"),
			WindOnshoreGrowth:  queryFloat(c, "wind_onshore_growth"),
			WindOffshoreGrowth: queryFloat(c, "wind_offshore_growth"),
		}
	}

	result, err := projection.Run(h.series, projection.Request{
		Method:        method,
		Preset:        preset,
		Custom:        custom,
		HorizonYear:   horizon,
		AllowFallback: true,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	first := result.Baseline.ReferenceYear + 1
	last := result.Records[len(result.Records)-1].Year
	filename := fmt.Sprintf("%s_%s_scenario_%d_%d.csv", result.Scenario, result.Method, first, last)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := projection.WriteProjectionCSV(c.Writer, result.Records, result.Scenario, result.Method); err != nil {
		h.log.Error().Err(err).Msg("csv export failed mid-stream")
	}
}

func customRates(p *models.CustomRatesPayload) *model.CustomRates {
	if p == nil {
		return nil
	}
	return &model.CustomRates{
		SolarGrowth:        p.SolarGrowth,
		WindOnshoreGrowth:  p.WindOnshoreGrowth,
		WindOffshoreGrowth: p.WindOffshoreGrowth,
	}
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
