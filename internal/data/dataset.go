package data

import (
	"fmt"
	"path/filepath"
	"strings"

	"energy-dashboard/internal/history"
	"energy-dashboard/internal/model"
)

// Paths names the source extracts. Generation accepts either the normalized
// annual CSV or the raw SMARD workbook (.xlsx); everything else is CSV.
// Optional series may be left empty.
type Paths struct {
	Generation          string
	GenerationForecast  string
	Consumption         string
	ConsumptionForecast string
	Capacity            string
}

// Dataset bundles every historical series the dashboard serves. It is loaded
// once at startup and treated as immutable afterwards.
type Dataset struct {
	Generation          []model.GenerationRecord
	GenerationForecast  []model.GenerationForecastRecord
	Consumption         []model.ConsumptionRecord
	ConsumptionForecast []model.ConsumptionForecastRecord
	Capacity            []model.CapacityRecord
}

// Load reads all configured series. The generation series is required; the
// rest load only when a path is configured.
func Load(p Paths) (*Dataset, error) {
	if p.Generation == "" {
		return nil, fmt.Errorf("generation data path is required")
	}

	ds := &Dataset{}
	var err error

	if strings.EqualFold(filepath.Ext(p.Generation), ".xlsx") {
		ds.Generation, err = LoadGenerationXLSX(p.Generation)
	} else {
		ds.Generation, err = LoadGenerationCSV(p.Generation)
	}
	if err != nil {
		return nil, fmt.Errorf("load generation: %w", err)
	}

	if p.GenerationForecast != "" {
		if ds.GenerationForecast, err = LoadGenerationForecastCSV(p.GenerationForecast); err != nil {
			return nil, fmt.Errorf("load generation forecast: %w", err)
		}
	}
	if p.Consumption != "" {
		if ds.Consumption, err = LoadConsumptionCSV(p.Consumption); err != nil {
			return nil, fmt.Errorf("load consumption: %w", err)
		}
	}
	if p.ConsumptionForecast != "" {
		if ds.ConsumptionForecast, err = LoadConsumptionForecastCSV(p.ConsumptionForecast); err != nil {
			return nil, fmt.Errorf("load consumption forecast: %w", err)
		}
	}
	if p.Capacity != "" {
		if ds.Capacity, err = LoadCapacityCSV(p.Capacity); err != nil {
			return nil, fmt.Errorf("load capacity: %w", err)
		}
	}

	return ds, nil
}

// FilterYears returns a copy restricted to [from, to]; zero bounds are open.
func (d *Dataset) FilterYears(from, to int) *Dataset {
	return &Dataset{
		Generation:          history.FilterGeneration(d.Generation, from, to),
		GenerationForecast:  history.FilterGenerationForecast(d.GenerationForecast, from, to),
		Consumption:         history.FilterConsumption(d.Consumption, from, to),
		ConsumptionForecast: history.FilterConsumptionForecast(d.ConsumptionForecast, from, to),
		Capacity:            history.FilterCapacity(d.Capacity, from, to),
	}
}
