package models

// CustomRatesPayload mirrors model.CustomRates for JSON binding. Pointers
// distinguish omitted rates from explicit zeros.
type CustomRatesPayload struct {
	SolarGrowth        *float64 `json:"solar_growth"`
	WindOnshoreGrowth  *float64 `json:"wind_onshore_growth"`
	WindOffshoreGrowth *float64 `json:"wind_offshore_growth"`
}

// ProjectionRequest is the body for POST /api/v1/projection.
type ProjectionRequest struct {
	Method   string `json:"method" binding:"required"`
	Scenario string `json:"scenario" binding:"required"`
	// Custom is required when scenario is "custom".
	Custom *CustomRatesPayload `json:"custom,omitempty"`
	// HorizonYear defaults to 2050.
	HorizonYear       int  `json:"horizon_year,omitempty"`
	IncludeMilestones bool `json:"include_milestones,omitempty"`
}

// CompareMethodsRequest runs one scenario under all four baseline methods.
type CompareMethodsRequest struct {
	Scenario    string              `json:"scenario" binding:"required"`
	Custom      *CustomRatesPayload `json:"custom,omitempty"`
	HorizonYear int                 `json:"horizon_year,omitempty"`
}

// CompareScenariosRequest runs all presets under one baseline method.
// Custom is included in the comparison when its rates are supplied.
type CompareScenariosRequest struct {
	Method      string              `json:"method" binding:"required"`
	Custom      *CustomRatesPayload `json:"custom,omitempty"`
	HorizonYear int                 `json:"horizon_year,omitempty"`
}
