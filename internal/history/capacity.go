package history

import (
	"sort"

	"energy-dashboard/internal/model"
)

// hoursPerYear is used for capacity-factor arithmetic; leap years are not
// worth the precision at this granularity.
const hoursPerYear = 8760

// CapacityFactor is the realized output of a technology as a percentage of
// what its installed capacity could deliver running flat out all year.
type CapacityFactor struct {
	Year        int     `json:"year"`
	Technology  string  `json:"technology"`
	InstalledMW float64 `json:"installed_mw"`
	FactorPct   float64 `json:"factor_pct"`
}

// CapacityFactors joins installed capacity with actual generation by year.
// The "Wind" capacity row covers onshore and offshore combined, so both
// generation columns count toward its factor. Years with zero capacity are
// skipped.
func CapacityFactors(capacity []model.CapacityRecord, generation []model.GenerationRecord) []CapacityFactor {
	genByYear := make(map[int]model.GenerationRecord, len(generation))
	for _, g := range generation {
		genByYear[g.Year] = g
	}

	out := make([]CapacityFactor, 0, len(capacity))
	for _, c := range capacity {
		if c.InstalledMW <= 0 {
			continue
		}
		g, ok := genByYear[c.Year]
		if !ok {
			continue
		}

		var genMWh float64
		switch c.Technology {
		case model.TechnologySolar:
			genMWh = g.SolarMWh
		case model.TechnologyWind:
			genMWh = g.WindOnshoreMWh + g.WindOffshoreMWh
		default:
			continue
		}

		out = append(out, CapacityFactor{
			Year:        c.Year,
			Technology:  c.Technology,
			InstalledMW: c.InstalledMW,
			FactorPct:   genMWh / (c.InstalledMW * hoursPerYear) * 100,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Technology < out[j].Technology
	})
	return out
}
