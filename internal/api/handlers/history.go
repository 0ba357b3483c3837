package handlers

import (
	"net/http"
	"strconv"

	"energy-dashboard/internal/api/models"
	"energy-dashboard/internal/data"
	"energy-dashboard/internal/history"
	"energy-dashboard/internal/model"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the historical series and their derived analytics.
type HistoryHandler struct {
	ds          *data.Dataset
	defaultFrom int
	defaultTo   int
}

func NewHistoryHandler(ds *data.Dataset, defaultFrom, defaultTo int) *HistoryHandler {
	return &HistoryHandler{ds: ds, defaultFrom: defaultFrom, defaultTo: defaultTo}
}

// yearRange reads the from/to query params, falling back to the configured
// defaults. A zero bound is open-ended.
func (h *HistoryHandler) yearRange(c *gin.Context) (int, int, bool) {
	from, to := h.defaultFrom, h.defaultTo
	var err error

	if raw := c.Query("from"); raw != "" {
		if from, err = strconv.Atoi(raw); err != nil {
			writeBadRequest(c, "INVALID_REQUEST", "from must be an integer year")
			return 0, 0, false
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = strconv.Atoi(raw); err != nil {
			writeBadRequest(c, "INVALID_REQUEST", "to must be an integer year")
			return 0, 0, false
		}
	}
	if from != 0 && to != 0 && from > to {
		writeBadRequest(c, "INVALID_REQUEST", "from must not exceed to")
		return 0, 0, false
	}
	return from, to, true
}

// GetGeneration handles GET /api/v1/history/generation
func (h *HistoryHandler) GetGeneration(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	rows := history.FilterGeneration(h.ds.Generation, from, to)
	c.JSON(http.StatusOK, models.SeriesResponse[model.GenerationRecord]{
		From: from, To: to, Count: len(rows), Rows: rows,
	})
}

// GetConsumption handles GET /api/v1/history/consumption
func (h *HistoryHandler) GetConsumption(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	rows := history.FilterConsumption(h.ds.Consumption, from, to)
	c.JSON(http.StatusOK, models.SeriesResponse[model.ConsumptionRecord]{
		From: from, To: to, Count: len(rows), Rows: rows,
	})
}

// GetCapacity handles GET /api/v1/history/capacity
func (h *HistoryHandler) GetCapacity(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	rows := history.FilterCapacity(h.ds.Capacity, from, to)
	c.JSON(http.StatusOK, models.SeriesResponse[model.CapacityRecord]{
		From: from, To: to, Count: len(rows), Rows: rows,
	})
}

// GetSummary handles GET /api/v1/history/summary
func (h *HistoryHandler) GetSummary(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	window := h.ds.FilterYears(from, to)
	c.JSON(http.StatusOK, models.HistorySummaryResponse{
		From:       from,
		To:         to,
		Generation: history.SummarizeGeneration(window.Generation),
		Load:       history.LoadStatistics(window.Consumption, window.ConsumptionForecast),
	})
}

// GetAccuracy handles GET /api/v1/history/accuracy
func (h *HistoryHandler) GetAccuracy(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	window := h.ds.FilterYears(from, to)
	report := history.ForecastAccuracy(window.Generation, window.GenerationForecast)
	c.JSON(http.StatusOK, report)
}

// GetCapacityFactors handles GET /api/v1/history/capacity-factors
func (h *HistoryHandler) GetCapacityFactors(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	window := h.ds.FilterYears(from, to)
	factors := history.CapacityFactors(window.Capacity, window.Generation)
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "factors": factors})
}

// GetLoad handles GET /api/v1/history/load
func (h *HistoryHandler) GetLoad(c *gin.Context) {
	from, to, ok := h.yearRange(c)
	if !ok {
		return
	}
	window := h.ds.FilterYears(from, to)
	stats := history.LoadStatistics(window.Consumption, window.ConsumptionForecast)
	c.JSON(http.StatusOK, stats)
}
