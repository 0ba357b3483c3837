package projection

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// WriteProjectionCSV streams the projection as a delimited table. Column
// order is fixed; downstream spreadsheets depend on it.
func WriteProjectionCSV(out io.Writer, records []ProjectionRecord, scenario, method string) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"year",
		"solar_mwh",
		"wind_onshore_mwh",
		"wind_offshore_mwh",
		"total_renewable_mwh",
		"renewable_share_pct",
		"scenario",
		"method",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.SolarMWh),
			fmtFloat(r.WindOnshoreMWh),
			fmtFloat(r.WindOffshoreMWh),
			fmtFloat(r.TotalRenewableMWh),
			fmtFloat(r.RenewableSharePct),
			scenario,
			method,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteProjectionCSVFile(path string, records []ProjectionRecord, scenario, method string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteProjectionCSV(f, records, scenario, method)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
