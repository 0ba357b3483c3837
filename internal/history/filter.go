package history

import "energy-dashboard/internal/model"

// filterYears keeps rows whose year falls in [from, to] inclusive. A zero
// bound means unbounded on that side.
func filterYears[T any](rows []T, from, to int, year func(T) int) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		y := year(r)
		if from != 0 && y < from {
			continue
		}
		if to != 0 && y > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

func FilterGeneration(rows []model.GenerationRecord, from, to int) []model.GenerationRecord {
	return filterYears(rows, from, to, func(r model.GenerationRecord) int { return r.Year })
}

func FilterGenerationForecast(rows []model.GenerationForecastRecord, from, to int) []model.GenerationForecastRecord {
	return filterYears(rows, from, to, func(r model.GenerationForecastRecord) int { return r.Year })
}

func FilterConsumption(rows []model.ConsumptionRecord, from, to int) []model.ConsumptionRecord {
	return filterYears(rows, from, to, func(r model.ConsumptionRecord) int { return r.Year })
}

func FilterConsumptionForecast(rows []model.ConsumptionForecastRecord, from, to int) []model.ConsumptionForecastRecord {
	return filterYears(rows, from, to, func(r model.ConsumptionForecastRecord) int { return r.Year })
}

func FilterCapacity(rows []model.CapacityRecord, from, to int) []model.CapacityRecord {
	return filterYears(rows, from, to, func(r model.CapacityRecord) int { return r.Year })
}
