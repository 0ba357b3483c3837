package model

// GenerationRecord is one year of actual renewable generation for the
// control area. Units are MWh.
//
// A historical series is ordered ascending by Year with unique years.
// Missing years are simply absent records; they are never zero-filled.
type GenerationRecord struct {
	Year            int     `json:"year"`
	SolarMWh        float64 `json:"solar_mwh"`
	WindOnshoreMWh  float64 `json:"wind_onshore_mwh"`
	WindOffshoreMWh float64 `json:"wind_offshore_mwh"`
}

func (r GenerationRecord) TotalMWh() float64 {
	return r.SolarMWh + r.WindOnshoreMWh + r.WindOffshoreMWh
}

// GenerationForecastRecord is the day-ahead/intraday forecast aggregated to
// annual totals. Forecast data is only available from 2018 onwards.
type GenerationForecastRecord struct {
	Year            int     `json:"year"`
	SolarMWh        float64 `json:"solar_mwh"`
	WindOnshoreMWh  float64 `json:"wind_onshore_mwh"`
	WindOffshoreMWh float64 `json:"wind_offshore_mwh"`
}

// ConsumptionRecord is one year of actual load.
type ConsumptionRecord struct {
	Year            int     `json:"year"`
	GridLoadMWh     float64 `json:"grid_load_mwh"`
	ResidualLoadMWh float64 `json:"residual_load_mwh"`
}

// ConsumptionForecastRecord is one year of forecasted load.
type ConsumptionForecastRecord struct {
	Year            int     `json:"year"`
	GridLoadMWh     float64 `json:"grid_load_mwh"`
	ResidualLoadMWh float64 `json:"residual_load_mwh"`
}

// Technology labels used in the installed-capacity extract.
const (
	TechnologySolar = "Solar"
	TechnologyWind  = "Wind"
)

// CapacityRecord is installed capacity for one technology in one year.
type CapacityRecord struct {
	Year        int     `json:"year"`
	Technology  string  `json:"technology"`
	InstalledMW float64 `json:"installed_mw"`
}

// MaxYear returns the largest year present in the series, or false if the
// series is empty. The series is not assumed sorted.
func MaxYear(series []GenerationRecord) (int, bool) {
	if len(series) == 0 {
		return 0, false
	}
	max := series[0].Year
	for _, r := range series[1:] {
		if r.Year > max {
			max = r.Year
		}
	}
	return max, true
}
