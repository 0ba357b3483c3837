package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"energy-dashboard/internal/model"

	"github.com/xuri/excelize/v2"
)

// LoadGenerationXLSX reads a SMARD-style actual-generation workbook with one
// sheet per calendar year (sheet name is the 4-digit year) and interval rows
// inside each sheet. Interval values are summed into one annual record per
// year. Sheets whose name is not a year are ignored.
func LoadGenerationXLSX(path string) ([]model.GenerationRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var out []model.GenerationRecord
	for _, sheet := range f.GetSheetList() {
		year, err := strconv.Atoi(sheet)
		if err != nil || len(sheet) != 4 {
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		solarCol := findColumn(rows[0], "photovoltaics")
		onshoreCol := findColumn(rows[0], "wind onshore")
		offshoreCol := findColumn(rows[0], "wind offshore")
		if solarCol < 0 && onshoreCol < 0 && offshoreCol < 0 {
			continue
		}

		rec := model.GenerationRecord{Year: year}
		for _, row := range rows[1:] {
			rec.SolarMWh += cellFloat(row, solarCol)
			rec.WindOnshoreMWh += cellFloat(row, onshoreCol)
			rec.WindOffshoreMWh += cellFloat(row, offshoreCol)
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("workbook %s: no year sheets with generation columns", path)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// findColumn matches headers like "Photovoltaics [MWh] Original resolutions"
// by case-insensitive substring.
func findColumn(header []string, name string) int {
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), name) {
			return i
		}
	}
	return -1
}

// cellFloat parses a numeric cell, tolerating thousands separators and
// placeholder dashes SMARD exports use for missing intervals.
func cellFloat(row []string, col int) float64 {
	if col < 0 || col >= len(row) {
		return 0
	}
	s := strings.TrimSpace(strings.ReplaceAll(row[col], ",", ""))
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
