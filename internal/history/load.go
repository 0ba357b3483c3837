package history

import (
	"math"

	"energy-dashboard/internal/model"
)

// LoadStats is the consumption metric block: totals, forecast tracking and
// the peak-load year.
type LoadStats struct {
	Years            int     `json:"years"`
	TotalLoadMWh     float64 `json:"total_load_mwh"`
	AverageAnnualMWh float64 `json:"average_annual_mwh"`
	PeakYear         int     `json:"peak_year"`
	PeakLoadMWh      float64 `json:"peak_load_mwh"`
	// GridLoadMAEPct is the mean absolute percent error of the load
	// forecast over the years both series cover.
	GridLoadMAEPct float64 `json:"grid_load_mae_pct"`
}

// LoadStatistics aggregates actual load and, where forecast rows exist for
// the same years, the forecast error.
func LoadStatistics(actual []model.ConsumptionRecord, forecast []model.ConsumptionForecastRecord) LoadStats {
	s := LoadStats{}
	if len(actual) == 0 {
		return s
	}

	fcByYear := make(map[int]model.ConsumptionForecastRecord, len(forecast))
	for _, f := range forecast {
		fcByYear[f.Year] = f
	}

	var absErrs []float64
	for _, a := range actual {
		s.Years++
		s.TotalLoadMWh += a.GridLoadMWh
		if a.GridLoadMWh > s.PeakLoadMWh {
			s.PeakLoadMWh = a.GridLoadMWh
			s.PeakYear = a.Year
		}
		if f, ok := fcByYear[a.Year]; ok && a.GridLoadMWh != 0 {
			absErrs = append(absErrs, math.Abs((f.GridLoadMWh-a.GridLoadMWh)/a.GridLoadMWh*100))
		}
	}

	s.AverageAnnualMWh = s.TotalLoadMWh / float64(s.Years)
	s.GridLoadMAEPct = mean(absErrs)
	return s
}
