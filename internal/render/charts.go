package render

import (
	"fmt"
	"image/color"
	"sort"

	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var palette = []color.RGBA{
	{R: 230, G: 159, B: 0, A: 255},  // solar: orange
	{R: 0, G: 114, B: 178, A: 255},  // onshore: blue
	{R: 0, G: 158, B: 115, A: 255},  // offshore: green
	{R: 85, G: 85, B: 85, A: 255},   // total: grey
	{R: 204, G: 121, B: 167, A: 255},
	{R: 213, G: 94, B: 0, A: 255},
}

func addLine(p *plot.Plot, name string, pts plotter.XYs, idx int) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)
	line.Color = palette[idx%len(palette)]
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// GenerationHistoryChart draws the three renewable technologies over the
// historical years and saves a PNG at path.
func GenerationHistoryChart(series []model.GenerationRecord, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no generation data to plot")
	}

	p := plot.New()
	p.Title.Text = "Renewable Generation by Technology"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Generation (MWh)"
	p.Legend.Top = true

	solar := make(plotter.XYs, len(series))
	onshore := make(plotter.XYs, len(series))
	offshore := make(plotter.XYs, len(series))
	for i, r := range series {
		x := float64(r.Year)
		solar[i] = plotter.XY{X: x, Y: r.SolarMWh}
		onshore[i] = plotter.XY{X: x, Y: r.WindOnshoreMWh}
		offshore[i] = plotter.XY{X: x, Y: r.WindOffshoreMWh}
	}

	if err := addLine(p, "Solar", solar, 0); err != nil {
		return err
	}
	if err := addLine(p, "Wind Onshore", onshore, 1); err != nil {
		return err
	}
	if err := addLine(p, "Wind Offshore", offshore, 2); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// ProjectionChart draws one projection run: per-technology lines plus the
// total, titled with the scenario and method names.
func ProjectionChart(result *projection.Result, path string) error {
	if len(result.Records) == 0 {
		return fmt.Errorf("no projection records to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Projection: %s / %s", result.Scenario, result.Method)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Generation (MWh)"
	p.Legend.Top = true

	n := len(result.Records)
	solar := make(plotter.XYs, n)
	onshore := make(plotter.XYs, n)
	offshore := make(plotter.XYs, n)
	total := make(plotter.XYs, n)
	for i, r := range result.Records {
		x := float64(r.Year)
		solar[i] = plotter.XY{X: x, Y: r.SolarMWh}
		onshore[i] = plotter.XY{X: x, Y: r.WindOnshoreMWh}
		offshore[i] = plotter.XY{X: x, Y: r.WindOffshoreMWh}
		total[i] = plotter.XY{X: x, Y: r.TotalRenewableMWh}
	}

	if err := addLine(p, "Solar", solar, 0); err != nil {
		return err
	}
	if err := addLine(p, "Wind Onshore", onshore, 1); err != nil {
		return err
	}
	if err := addLine(p, "Wind Offshore", offshore, 2); err != nil {
		return err
	}
	if err := addLine(p, "Total Renewable", total, 3); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// ShareComparisonChart draws the renewable-share ramp of several runs on one
// axis, one line per scenario or method.
func ShareComparisonChart(results map[string]*projection.Result, path string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to plot")
	}

	p := plot.New()
	p.Title.Text = "Renewable Share Trajectory"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Renewable Share (%)"
	p.Y.Min, p.Y.Max = 0, 100
	p.Legend.Top = true

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		recs := results[name].Records
		pts := make(plotter.XYs, len(recs))
		for j, r := range recs {
			pts[j] = plotter.XY{X: float64(r.Year), Y: r.RenewableSharePct}
		}
		if err := addLine(p, name, pts, i); err != nil {
			return err
		}
	}
	p.Add(plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
