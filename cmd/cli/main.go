package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"energy-dashboard/internal/config"
	"energy-dashboard/internal/data"
	"energy-dashboard/internal/history"
	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"
	"energy-dashboard/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "summary":
		cmdSummary(os.Args[2:])
	case "charts":
		cmdCharts(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/config.yaml --scenario ambitious --method recent_average_3 --out results/projection.csv")
	fmt.Println("  cli compare --config examples/config.yaml --by methods --scenario business_as_usual")
	fmt.Println("  cli summary --config examples/config.yaml")
	fmt.Println("  cli charts  --config examples/config.yaml --out results/charts")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project compounds the baseline forward to the horizon year and prints milestones")
	fmt.Println("  - compare runs one scenario under every method (--by methods) or every preset under one method (--by scenarios)")
	fmt.Println("  - custom scenarios take --solar/--onshore/--offshore fractional growth rates")
}

func loadDataset(cfgPath string) (*config.Config, *data.Dataset) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	ds, err := data.Load(data.Paths{
		Generation:          cfg.Data.GenerationFile,
		GenerationForecast:  cfg.Data.GenerationForecastFile,
		Consumption:         cfg.Data.ConsumptionFile,
		ConsumptionForecast: cfg.Data.ConsumptionForecastFile,
		Capacity:            cfg.Data.CapacityFile,
	})
	if err != nil {
		panic(err)
	}
	cfg.Projection.FallbackBaseline.Apply()
	return cfg, ds
}

func customFromFlags(solar, onshore, offshore float64, set *flag.FlagSet) *model.CustomRates {
	supplied := map[string]bool{}
	set.Visit(func(f *flag.Flag) { supplied[f.Name] = true })
	if !supplied["solar"] && !supplied["onshore"] && !supplied["offshore"] {
		return nil
	}
	custom := &model.CustomRates{}
	if supplied["solar"] {
		custom.SolarGrowth = &solar
	}
	if supplied["onshore"] {
		custom.WindOnshoreGrowth = &onshore
	}
	if supplied["offshore"] {
		custom.WindOffshoreGrowth = &offshore
	}
	return custom
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	scenarioName := fs.String("scenario", "", "Scenario preset (default from config)")
	methodName := fs.String("method", "", "Baseline method (default from config)")
	horizon := fs.Int("horizon", 0, "Horizon year (default from config)")
	solar := fs.Float64("solar", 0, "Custom solar growth rate (fraction)")
	onshore := fs.Float64("onshore", 0, "Custom wind onshore growth rate (fraction)")
	offshore := fs.Float64("offshore", 0, "Custom wind offshore growth rate (fraction)")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	cfg, ds := loadDataset(*cfgPath)
	if *scenarioName == "" {
		*scenarioName = cfg.Projection.Scenario
	}
	if *methodName == "" {
		*methodName = cfg.Projection.Method
	}
	if *horizon == 0 {
		*horizon = cfg.Projection.HorizonYear
	}

	method, err := model.ParseMethod(*methodName)
	if err != nil {
		panic(err)
	}
	preset, err := model.ParsePreset(*scenarioName)
	if err != nil {
		panic(err)
	}

	result, err := projection.Run(ds.Generation, projection.Request{
		Method:        method,
		Preset:        preset,
		Custom:        customFromFlags(*solar, *onshore, *offshore, fs),
		HorizonYear:   *horizon,
		AllowFallback: true,
	})
	if err != nil {
		panic(err)
	}

	b := result.Baseline
	fmt.Printf("Scenario=%s Method=%s Baseline year=%d\n", result.Scenario, result.Method, b.ReferenceYear)
	if result.UsedFallback {
		fmt.Println("(series too short for method, fallback baseline used)")
	}
	fmt.Printf("Baseline: solar=%.0f MWh onshore=%.0f MWh offshore=%.0f MWh\n\n", b.SolarMWh, b.WindOnshoreMWh, b.WindOffshoreMWh)

	fmt.Printf("%-6s %14s %14s %14s %16s %8s\n", "year", "solar", "onshore", "offshore", "total", "share%")
	for _, r := range result.Records {
		fmt.Printf("%-6d %14.0f %14.0f %14.0f %16.0f %8.1f\n",
			r.Year, r.SolarMWh, r.WindOnshoreMWh, r.WindOffshoreMWh, r.TotalRenewableMWh, r.RenewableSharePct)
	}

	if ms := projection.Milestones(result.Records, nil); len(ms) > 0 {
		fmt.Println("\nmilestones:")
		for _, m := range ms {
			fmt.Printf("  %2.0f%% renewable share reached in %d\n", m.ThresholdPct, m.Year)
		}
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := projection.WriteProjectionCSVFile(*outPath, result.Records, result.Scenario, result.Method); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(result.Records), *outPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	by := fs.String("by", "methods", "Compare axis: methods or scenarios")
	scenarioName := fs.String("scenario", "", "Scenario preset when comparing methods (default from config)")
	methodName := fs.String("method", "", "Baseline method when comparing scenarios (default from config)")
	horizon := fs.Int("horizon", 0, "Horizon year (default from config)")
	solar := fs.Float64("solar", 0, "Custom solar growth rate (fraction)")
	onshore := fs.Float64("onshore", 0, "Custom wind onshore growth rate (fraction)")
	offshore := fs.Float64("offshore", 0, "Custom wind offshore growth rate (fraction)")
	_ = fs.Parse(args)

	cfg, ds := loadDataset(*cfgPath)
	if *scenarioName == "" {
		*scenarioName = cfg.Projection.Scenario
	}
	if *methodName == "" {
		*methodName = cfg.Projection.Method
	}
	if *horizon == 0 {
		*horizon = cfg.Projection.HorizonYear
	}
	custom := customFromFlags(*solar, *onshore, *offshore, fs)

	var results map[string]*projection.Result
	var err error
	switch *by {
	case "methods":
		preset, perr := model.ParsePreset(*scenarioName)
		if perr != nil {
			panic(perr)
		}
		results, err = projection.CompareMethods(ds.Generation, preset, custom, *horizon)
	case "scenarios":
		method, merr := model.ParseMethod(*methodName)
		if merr != nil {
			panic(merr)
		}
		results, err = projection.CompareScenarios(ds.Generation, method, custom, *horizon)
	default:
		panic(fmt.Errorf("unsupported compare axis: %q", *by))
	}
	if err != nil {
		panic(err)
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-20s %16s %16s %8s\n", *by, "total 2050", "baseline year", "share%")
	for _, name := range names {
		r := results[name]
		last := r.Records[len(r.Records)-1]
		fmt.Printf("%-20s %16.0f %16d %8.1f\n", name, last.TotalRenewableMWh, r.Baseline.ReferenceYear, last.RenewableSharePct)
	}
}

func cmdSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	from := fs.Int("from", 0, "Start year (default from config)")
	to := fs.Int("to", 0, "End year (default from config)")
	_ = fs.Parse(args)

	cfg, ds := loadDataset(*cfgPath)
	if *from == 0 {
		*from = cfg.History.StartYear
	}
	if *to == 0 {
		*to = cfg.History.EndYear
	}

	window := ds.FilterYears(*from, *to)
	gen := history.SummarizeGeneration(window.Generation)
	fmt.Printf("Generation %d-%d (%d years)\n", *from, *to, gen.Years)
	fmt.Printf("  total renewable   %14.0f MWh\n", gen.TotalMWh)
	fmt.Printf("  avg annual        %14.0f MWh\n", gen.AverageAnnualMWh)
	fmt.Printf("  solar share       %.1f%%  (%.0f MWh)\n", gen.SolarSharePct, gen.SolarTotalMWh)
	fmt.Printf("  wind share        %.1f%%  (%.0f onshore + %.0f offshore MWh)\n", gen.WindSharePct, gen.WindOnshoreMWh, gen.WindOffshoreMWh)
	fmt.Printf("  peak year         %d (%.0f MWh)\n", gen.PeakYear, gen.PeakGenerationMWh)

	if len(window.Consumption) > 0 {
		load := history.LoadStatistics(window.Consumption, window.ConsumptionForecast)
		fmt.Printf("\nLoad\n")
		fmt.Printf("  avg grid load     %14.0f MWh\n", load.AverageAnnualMWh)
		fmt.Printf("  peak year         %d (%.0f MWh)\n", load.PeakYear, load.PeakLoadMWh)
		if load.GridLoadMAEPct > 0 {
			fmt.Printf("  forecast MAE      %.2f%%\n", load.GridLoadMAEPct)
		}
	}

	if len(window.GenerationForecast) > 0 {
		acc := history.ForecastAccuracy(window.Generation, window.GenerationForecast)
		fmt.Printf("\nForecast accuracy\n")
		fmt.Printf("  solar MAE         %.2f%%\n", acc.SolarMAEPct)
		fmt.Printf("  wind onshore MAE  %.2f%%\n", acc.WindOnshoreMAEPct)
		fmt.Printf("  overall accuracy  %.2f%%\n", acc.OverallAccuracyPct)
	}

	if len(window.Capacity) > 0 {
		fmt.Printf("\nCapacity factors\n")
		for _, cf := range history.CapacityFactors(window.Capacity, window.Generation) {
			fmt.Printf("  %d %-6s %6.1f%%  (%.0f MW installed)\n", cf.Year, cf.Technology, cf.FactorPct, cf.InstalledMW)
		}
	}
}

func cmdCharts(args []string) {
	fs := flag.NewFlagSet("charts", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outDir := fs.String("out", "results/charts", "Output directory for PNGs")
	_ = fs.Parse(args)

	cfg, ds := loadDataset(*cfgPath)
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	historyPath := filepath.Join(*outDir, "generation_history.png")
	if err := render.GenerationHistoryChart(ds.Generation, historyPath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s\n", historyPath)

	method, err := model.ParseMethod(cfg.Projection.Method)
	if err != nil {
		panic(err)
	}
	preset, err := model.ParsePreset(cfg.Projection.Scenario)
	if err != nil {
		panic(err)
	}

	result, err := projection.Run(ds.Generation, projection.Request{
		Method:        method,
		Preset:        preset,
		HorizonYear:   cfg.Projection.HorizonYear,
		AllowFallback: true,
	})
	if err != nil {
		panic(err)
	}
	projPath := filepath.Join(*outDir, "projection.png")
	if err := render.ProjectionChart(result, projPath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s\n", projPath)

	results, err := projection.CompareScenarios(ds.Generation, method, nil, cfg.Projection.HorizonYear)
	if err != nil {
		panic(err)
	}
	sharePath := filepath.Join(*outDir, "renewable_share.png")
	if err := render.ShareComparisonChart(results, sharePath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s\n", sharePath)
}
