package history

import "energy-dashboard/internal/model"

// GenerationSummary is the headline metric block for a selected year range.
type GenerationSummary struct {
	Years             int     `json:"years"`
	TotalMWh          float64 `json:"total_mwh"`
	AverageAnnualMWh  float64 `json:"average_annual_mwh"`
	SolarSharePct     float64 `json:"solar_share_pct"`
	WindSharePct      float64 `json:"wind_share_pct"`
	SolarTotalMWh     float64 `json:"solar_total_mwh"`
	WindOnshoreMWh    float64 `json:"wind_onshore_total_mwh"`
	WindOffshoreMWh   float64 `json:"wind_offshore_total_mwh"`
	PeakYear          int     `json:"peak_year"`
	PeakGenerationMWh float64 `json:"peak_generation_mwh"`
}

// SummarizeGeneration aggregates a generation series. An empty series yields
// a zero summary.
func SummarizeGeneration(series []model.GenerationRecord) GenerationSummary {
	s := GenerationSummary{}
	if len(series) == 0 {
		return s
	}

	s.Years = len(series)
	for _, r := range series {
		total := r.TotalMWh()
		s.TotalMWh += total
		s.SolarTotalMWh += r.SolarMWh
		s.WindOnshoreMWh += r.WindOnshoreMWh
		s.WindOffshoreMWh += r.WindOffshoreMWh
		if total > s.PeakGenerationMWh {
			s.PeakGenerationMWh = total
			s.PeakYear = r.Year
		}
	}

	s.AverageAnnualMWh = s.TotalMWh / float64(len(series))
	if s.TotalMWh > 0 {
		s.SolarSharePct = s.SolarTotalMWh / s.TotalMWh * 100
		s.WindSharePct = (s.WindOnshoreMWh + s.WindOffshoreMWh) / s.TotalMWh * 100
	}
	return s
}
