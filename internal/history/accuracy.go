package history

import (
	"math"
	"sort"

	"energy-dashboard/internal/model"
)

// YearErrors is the signed forecast error per technology for one year,
// in percent of the actual value. A positive error means over-forecast.
type YearErrors struct {
	Year               int     `json:"year"`
	SolarErrPct        float64 `json:"solar_err_pct"`
	WindOnshoreErrPct  float64 `json:"wind_onshore_err_pct"`
	WindOffshoreErrPct float64 `json:"wind_offshore_err_pct"`
}

// AccuracyReport summarizes how well the annual generation forecasts tracked
// the actuals over the joined years.
type AccuracyReport struct {
	Rows []YearErrors `json:"rows"`

	SolarMAEPct        float64 `json:"solar_mae_pct"`
	WindOnshoreMAEPct  float64 `json:"wind_onshore_mae_pct"`
	WindOffshoreMAEPct float64 `json:"wind_offshore_mae_pct"`

	// OverallAccuracyPct is 100 minus the mean absolute error across the
	// solar and wind-onshore columns, matching the dashboard's headline.
	OverallAccuracyPct float64 `json:"overall_accuracy_pct"`
}

// ForecastAccuracy joins actuals and forecasts on year and computes percent
// errors. Years present in only one series are skipped, as are years with a
// zero actual (the error is undefined there).
func ForecastAccuracy(actual []model.GenerationRecord, forecast []model.GenerationForecastRecord) AccuracyReport {
	fcByYear := make(map[int]model.GenerationForecastRecord, len(forecast))
	for _, f := range forecast {
		fcByYear[f.Year] = f
	}

	rep := AccuracyReport{}
	var solarAbs, onshoreAbs, offshoreAbs []float64

	for _, a := range actual {
		f, ok := fcByYear[a.Year]
		if !ok {
			continue
		}
		row := YearErrors{Year: a.Year}
		if a.SolarMWh != 0 {
			row.SolarErrPct = (f.SolarMWh - a.SolarMWh) / a.SolarMWh * 100
			solarAbs = append(solarAbs, math.Abs(row.SolarErrPct))
		}
		if a.WindOnshoreMWh != 0 {
			row.WindOnshoreErrPct = (f.WindOnshoreMWh - a.WindOnshoreMWh) / a.WindOnshoreMWh * 100
			onshoreAbs = append(onshoreAbs, math.Abs(row.WindOnshoreErrPct))
		}
		if a.WindOffshoreMWh != 0 {
			row.WindOffshoreErrPct = (f.WindOffshoreMWh - a.WindOffshoreMWh) / a.WindOffshoreMWh * 100
			offshoreAbs = append(offshoreAbs, math.Abs(row.WindOffshoreErrPct))
		}
		rep.Rows = append(rep.Rows, row)
	}

	sort.Slice(rep.Rows, func(i, j int) bool { return rep.Rows[i].Year < rep.Rows[j].Year })

	rep.SolarMAEPct = mean(solarAbs)
	rep.WindOnshoreMAEPct = mean(onshoreAbs)
	rep.WindOffshoreMAEPct = mean(offshoreAbs)
	rep.OverallAccuracyPct = 100 - (rep.SolarMAEPct+rep.WindOnshoreMAEPct)/2
	return rep
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
