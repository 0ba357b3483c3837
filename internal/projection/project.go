package projection

import (
	"errors"
	"fmt"
	"math"

	"energy-dashboard/internal/model"
)

// ErrInvalidHorizon is returned when the horizon does not extend past the
// baseline's reference year.
var ErrInvalidHorizon = errors.New("horizon year must be after the reference year")

// DefaultHorizonYear is the dashboard's projection endpoint.
const DefaultHorizonYear = 2050

// shareFloor is the renewable share at the reference year the linear ramp
// starts from (45%).
const shareFloor = 0.45

// ProjectionRecord is one projected year. This is the primary artifact for
// "what the scenario says" and maps 1:1 onto a CSV export row.
type ProjectionRecord struct {
	Year              int     `json:"year"`
	SolarMWh          float64 `json:"solar_mwh"`
	WindOnshoreMWh    float64 `json:"wind_onshore_mwh"`
	WindOffshoreMWh   float64 `json:"wind_offshore_mwh"`
	TotalRenewableMWh float64 `json:"total_renewable_mwh"`
	RenewableSharePct float64 `json:"renewable_share_pct"`
}

// Project extrapolates a baseline forward under compound growth, one record
// per year from ReferenceYear+1 through horizonYear inclusive.
//
// RenewableSharePct is NOT derived from the generation totals: it is an
// independent linear ramp from 45% at the reference year toward the
// scenario's 2050 target, capped at the target. The two columns are
// deliberately inconsistent with each other; that decoupling is an
// illustrative modeling simplification, not a bug.
func Project(baseline model.Baseline, params model.ScenarioParameters, horizonYear int) ([]ProjectionRecord, error) {
	if horizonYear <= baseline.ReferenceYear {
		return nil, fmt.Errorf("%w: horizon %d, reference %d", ErrInvalidHorizon, horizonYear, baseline.ReferenceYear)
	}

	span := float64(horizonYear - baseline.ReferenceYear)
	records := make([]ProjectionRecord, 0, horizonYear-baseline.ReferenceYear)

	for year := baseline.ReferenceYear + 1; year <= horizonYear; year++ {
		t := float64(year - baseline.ReferenceYear)

		solar := baseline.SolarMWh * math.Pow(1+params.SolarGrowth, t)
		onshore := baseline.WindOnshoreMWh * math.Pow(1+params.WindOnshoreGrowth, t)
		offshore := baseline.WindOffshoreMWh * math.Pow(1+params.WindOffshoreGrowth, t)

		share := shareFloor + (params.RenewableShareTarget2050-shareFloor)*(t/span)
		if share > params.RenewableShareTarget2050 {
			share = params.RenewableShareTarget2050
		}

		records = append(records, ProjectionRecord{
			Year:              year,
			SolarMWh:          solar,
			WindOnshoreMWh:    onshore,
			WindOffshoreMWh:   offshore,
			TotalRenewableMWh: solar + onshore + offshore,
			RenewableSharePct: share * 100,
		})
	}

	return records, nil
}

// Request bundles the inputs for one end-to-end projection run.
type Request struct {
	Method model.BaselineMethod
	Preset model.ScenarioPreset
	// Custom must be set when Preset is PresetCustom.
	Custom *model.CustomRates
	// HorizonYear defaults to DefaultHorizonYear when zero.
	HorizonYear int
	// AllowFallback substitutes FallbackBaseline when the series cannot
	// support the chosen method. The substitution is surfaced via
	// Result.UsedFallback so it stays visible to the caller.
	AllowFallback bool
}

// Result is the output of a run: the baseline actually used plus the
// projected records. Method and Scenario carry the stable names used in CSV
// and API output.
type Result struct {
	Method       string             `json:"method"`
	Scenario     string             `json:"scenario"`
	Baseline     model.Baseline     `json:"baseline"`
	UsedFallback bool               `json:"used_fallback"`
	Records      []ProjectionRecord `json:"records"`
}

// Run chains baseline estimation, preset resolution and projection.
func Run(series []model.GenerationRecord, req Request) (*Result, error) {
	params, err := model.ResolvePreset(req.Preset, req.Custom)
	if err != nil {
		return nil, err
	}

	horizon := req.HorizonYear
	if horizon == 0 {
		horizon = DefaultHorizonYear
	}

	usedFallback := false
	baseline, err := EstimateBaseline(series, req.Method)
	if err != nil {
		if !req.AllowFallback || !errors.Is(err, ErrInsufficientData) {
			return nil, err
		}
		baseline = FallbackBaseline
		usedFallback = true
	}

	records, err := Project(baseline, params, horizon)
	if err != nil {
		return nil, err
	}

	return &Result{
		Method:       req.Method.String(),
		Scenario:     req.Preset.String(),
		Baseline:     baseline,
		UsedFallback: usedFallback,
		Records:      records,
	}, nil
}
