package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"energy-dashboard/internal/model"
)

// The CSV loaders below accept the normalized annual extracts the dashboard
// consumes. All are header-driven: columns may appear in any order, rows
// with an unparseable year are skipped (missing years stay missing), and
// results come back sorted ascending by year.

func LoadGenerationCSV(path string) ([]model.GenerationRecord, error) {
	var out []model.GenerationRecord
	err := readCSV(path, func(get func(string) string) {
		year, ok := parseYear(get("year"))
		if !ok {
			return
		}
		out = append(out, model.GenerationRecord{
			Year:            year,
			SolarMWh:        parseFloat(get("solar_mwh")),
			WindOnshoreMWh:  parseFloat(get("wind_onshore_mwh")),
			WindOffshoreMWh: parseFloat(get("wind_offshore_mwh")),
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func LoadGenerationForecastCSV(path string) ([]model.GenerationForecastRecord, error) {
	var out []model.GenerationForecastRecord
	err := readCSV(path, func(get func(string) string) {
		year, ok := parseYear(get("year"))
		if !ok {
			return
		}
		out = append(out, model.GenerationForecastRecord{
			Year:            year,
			SolarMWh:        parseFloat(get("solar_mwh")),
			WindOnshoreMWh:  parseFloat(get("wind_onshore_mwh")),
			WindOffshoreMWh: parseFloat(get("wind_offshore_mwh")),
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func LoadConsumptionCSV(path string) ([]model.ConsumptionRecord, error) {
	var out []model.ConsumptionRecord
	err := readCSV(path, func(get func(string) string) {
		year, ok := parseYear(get("year"))
		if !ok {
			return
		}
		out = append(out, model.ConsumptionRecord{
			Year:            year,
			GridLoadMWh:     parseFloat(get("grid_load_mwh")),
			ResidualLoadMWh: parseFloat(get("residual_load_mwh")),
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func LoadConsumptionForecastCSV(path string) ([]model.ConsumptionForecastRecord, error) {
	var out []model.ConsumptionForecastRecord
	err := readCSV(path, func(get func(string) string) {
		year, ok := parseYear(get("year"))
		if !ok {
			return
		}
		out = append(out, model.ConsumptionForecastRecord{
			Year:            year,
			GridLoadMWh:     parseFloat(get("grid_load_mwh")),
			ResidualLoadMWh: parseFloat(get("residual_load_mwh")),
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func LoadCapacityCSV(path string) ([]model.CapacityRecord, error) {
	var out []model.CapacityRecord
	err := readCSV(path, func(get func(string) string) {
		year, ok := parseYear(get("year"))
		if !ok {
			return
		}
		out = append(out, model.CapacityRecord{
			Year:        year,
			Technology:  strings.TrimSpace(get("production_type")),
			InstalledMW: parseFloat(get("installed_capacity_mw")),
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Technology < out[j].Technology
	})
	return out, nil
}

// WriteGenerationCSV writes the normalized annual-generation extract, the
// inverse of LoadGenerationCSV. Used by the convert tool.
func WriteGenerationCSV(out io.Writer, records []model.GenerationRecord) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"year", "solar_mwh", "wind_onshore_mwh", "wind_offshore_mwh"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.SolarMWh, 'f', 3, 64),
			strconv.FormatFloat(r.WindOnshoreMWh, 'f', 3, 64),
			strconv.FormatFloat(r.WindOffshoreMWh, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// readCSV parses path and invokes visit once per data row with a
// header-keyed accessor. Header names are matched case-insensitively.
func readCSV(path string, visit func(get func(string) string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		visit(func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		})
	}
}

func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 || y > 2200 {
		return 0, false
	}
	return y, true
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
