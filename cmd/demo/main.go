package main

import (
	"flag"
	"fmt"

	"energy-dashboard/internal/data"
	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"
)

// Demo:
// - Load the annual generation extract
// - Estimate a baseline with the 3-year average
// - Project the business-as-usual scenario to 2050 and print the trajectory
func main() {
	dataPath := flag.String("data", "examples/data/generation_annual.csv", "Path to annual generation CSV")
	scenarioName := flag.String("scenario", "business_as_usual", "Scenario preset")
	flag.Parse()

	series, err := data.LoadGenerationCSV(*dataPath)
	if err != nil {
		panic(err)
	}
	if len(series) == 0 {
		panic("no generation data in CSV")
	}

	preset, err := model.ParsePreset(*scenarioName)
	if err != nil {
		panic(err)
	}

	result, err := projection.Run(series, projection.Request{
		Method:        model.MethodRecentAverage,
		Preset:        preset,
		AllowFallback: true,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d years (%d-%d)\n", len(series), series[0].Year, series[len(series)-1].Year)
	fmt.Printf("Scenario=%s Method=%s\n", result.Scenario, result.Method)
	fmt.Printf("Baseline year=%d solar=%.0f onshore=%.0f offshore=%.0f\n\n",
		result.Baseline.ReferenceYear,
		result.Baseline.SolarMWh,
		result.Baseline.WindOnshoreMWh,
		result.Baseline.WindOffshoreMWh,
	)

	for _, r := range result.Records {
		fmt.Printf("%d  total=%12.0f MWh  share=%5.1f%%\n", r.Year, r.TotalRenewableMWh, r.RenewableSharePct)
	}

	if ms := projection.Milestones(result.Records, nil); len(ms) > 0 {
		fmt.Println()
		for _, m := range ms {
			fmt.Printf("%2.0f%% share reached in %d\n", m.ThresholdPct, m.Year)
		}
	}
}
