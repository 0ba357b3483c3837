package models

import (
	"energy-dashboard/internal/history"
	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"
)

// ProjectionResponse is the envelope for a single projection run.
type ProjectionResponse struct {
	Method       string                        `json:"method"`
	Scenario     string                        `json:"scenario"`
	Baseline     model.Baseline                `json:"baseline"`
	UsedFallback bool                          `json:"used_fallback"`
	Records      []projection.ProjectionRecord `json:"records"`
	Milestones   []projection.Milestone        `json:"milestones,omitempty"`
}

// CompareResponse keys full results by method or scenario name for
// side-by-side rendering.
type CompareResponse struct {
	Results map[string]*projection.Result `json:"results"`
}

// SeriesResponse wraps a filtered historical series with its bounds.
type SeriesResponse[T any] struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
	Rows  []T `json:"rows"`
}

// HistorySummaryResponse bundles the headline metric blocks.
type HistorySummaryResponse struct {
	From       int                       `json:"from"`
	To         int                       `json:"to"`
	Generation history.GenerationSummary `json:"generation"`
	Load       history.LoadStats         `json:"load"`
}

// MethodInfo describes one baseline method for the UI selector.
type MethodInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WindowYears int    `json:"window_years,omitempty"`
}

// ScenarioInfo describes one scenario preset for the UI selector.
type ScenarioInfo struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Parameters  *model.ScenarioParameters `json:"parameters,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
