package history

import (
	"testing"

	"energy-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeGeneration(t *testing.T) {
	series := []model.GenerationRecord{
		{Year: 2023, SolarMWh: 100, WindOnshoreMWh: 200, WindOffshoreMWh: 100}, // total 400
		{Year: 2024, SolarMWh: 150, WindOnshoreMWh: 250, WindOffshoreMWh: 200}, // total 600
	}

	s := SummarizeGeneration(series)

	assert.Equal(t, 2, s.Years)
	assert.InDelta(t, 1000, s.TotalMWh, 1e-9)
	assert.InDelta(t, 500, s.AverageAnnualMWh, 1e-9)
	assert.InDelta(t, 25, s.SolarSharePct, 1e-9) // 250/1000
	assert.InDelta(t, 75, s.WindSharePct, 1e-9)  // 750/1000
	assert.Equal(t, 2024, s.PeakYear)
	assert.InDelta(t, 600, s.PeakGenerationMWh, 1e-9)
}

func TestSummarizeGenerationEmpty(t *testing.T) {
	s := SummarizeGeneration(nil)
	assert.Zero(t, s.Years)
	assert.Zero(t, s.TotalMWh)
	assert.Zero(t, s.SolarSharePct)
}

func TestForecastAccuracy(t *testing.T) {
	actual := []model.GenerationRecord{
		{Year: 2023, SolarMWh: 100, WindOnshoreMWh: 200, WindOffshoreMWh: 50},
		{Year: 2024, SolarMWh: 200, WindOnshoreMWh: 100, WindOffshoreMWh: 50},
		{Year: 2025, SolarMWh: 300}, // no matching forecast row
	}
	forecast := []model.GenerationForecastRecord{
		{Year: 2023, SolarMWh: 110, WindOnshoreMWh: 190, WindOffshoreMWh: 50}, // +10%, -5%, 0%
		{Year: 2024, SolarMWh: 160, WindOnshoreMWh: 110, WindOffshoreMWh: 55}, // -20%, +10%, +10%
	}

	rep := ForecastAccuracy(actual, forecast)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 2023, rep.Rows[0].Year)
	assert.InDelta(t, 10, rep.Rows[0].SolarErrPct, 1e-9)
	assert.InDelta(t, -5, rep.Rows[0].WindOnshoreErrPct, 1e-9)
	assert.InDelta(t, -20, rep.Rows[1].SolarErrPct, 1e-9)

	assert.InDelta(t, 15, rep.SolarMAEPct, 1e-9)         // (10+20)/2
	assert.InDelta(t, 7.5, rep.WindOnshoreMAEPct, 1e-9)  // (5+10)/2
	assert.InDelta(t, 5, rep.WindOffshoreMAEPct, 1e-9)   // (0+10)/2
	assert.InDelta(t, 88.75, rep.OverallAccuracyPct, 1e-9) // 100 - (15+7.5)/2
}

func TestForecastAccuracySkipsZeroActuals(t *testing.T) {
	actual := []model.GenerationRecord{
		{Year: 2024, SolarMWh: 0, WindOnshoreMWh: 100},
	}
	forecast := []model.GenerationForecastRecord{
		{Year: 2024, SolarMWh: 50, WindOnshoreMWh: 110},
	}

	rep := ForecastAccuracy(actual, forecast)
	require.Len(t, rep.Rows, 1)
	assert.Zero(t, rep.Rows[0].SolarErrPct)
	assert.Zero(t, rep.SolarMAEPct)
	assert.InDelta(t, 10, rep.WindOnshoreMAEPct, 1e-9)
}

func TestCapacityFactors(t *testing.T) {
	capacity := []model.CapacityRecord{
		{Year: 2024, Technology: model.TechnologySolar, InstalledMW: 100},
		{Year: 2024, Technology: model.TechnologyWind, InstalledMW: 200},
		{Year: 2024, Technology: "Biomass", InstalledMW: 50}, // unknown tech skipped
		{Year: 2025, Technology: model.TechnologySolar, InstalledMW: 0},
	}
	generation := []model.GenerationRecord{
		// Solar runs at 25% of 100 MW * 8760 h; wind onshore+offshore at 30%.
		{Year: 2024, SolarMWh: 219_000, WindOnshoreMWh: 400_000, WindOffshoreMWh: 125_600},
		{Year: 2025, SolarMWh: 100_000},
	}

	factors := CapacityFactors(capacity, generation)

	require.Len(t, factors, 2)
	assert.Equal(t, model.TechnologySolar, factors[0].Technology)
	assert.InDelta(t, 25, factors[0].FactorPct, 1e-9)
	assert.Equal(t, model.TechnologyWind, factors[1].Technology)
	assert.InDelta(t, 30, factors[1].FactorPct, 1e-9)
}

func TestLoadStatistics(t *testing.T) {
	actual := []model.ConsumptionRecord{
		{Year: 2023, GridLoadMWh: 1000},
		{Year: 2024, GridLoadMWh: 1200},
	}
	forecast := []model.ConsumptionForecastRecord{
		{Year: 2023, GridLoadMWh: 1050}, // +5%
		{Year: 2024, GridLoadMWh: 1080}, // -10%
	}

	s := LoadStatistics(actual, forecast)

	assert.Equal(t, 2, s.Years)
	assert.InDelta(t, 2200, s.TotalLoadMWh, 1e-9)
	assert.InDelta(t, 1100, s.AverageAnnualMWh, 1e-9)
	assert.Equal(t, 2024, s.PeakYear)
	assert.InDelta(t, 1200, s.PeakLoadMWh, 1e-9)
	assert.InDelta(t, 7.5, s.GridLoadMAEPct, 1e-9)
}

func TestFilterYears(t *testing.T) {
	series := []model.GenerationRecord{
		{Year: 2020}, {Year: 2022}, {Year: 2024}, {Year: 2026},
	}

	assert.Len(t, FilterGeneration(series, 2022, 2024), 2)
	assert.Len(t, FilterGeneration(series, 0, 2022), 2)   // open start
	assert.Len(t, FilterGeneration(series, 2024, 0), 2)   // open end
	assert.Len(t, FilterGeneration(series, 0, 0), 4)      // unbounded
	assert.Empty(t, FilterGeneration(series, 2027, 2030)) // nothing in range
}
