package projection

import (
	"errors"
	"fmt"

	"energy-dashboard/internal/model"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when a baseline cannot be computed: the
// series is empty, or a regression window holds fewer than 2 distinct years.
var ErrInsufficientData = errors.New("insufficient historical data")

// FallbackBaseline is the documented default the presentation layers
// substitute when EstimateBaseline fails with ErrInsufficientData. It is an
// explicit, visible default, never a silent zero; callers that use it must
// say so (see Result.UsedFallback).
var FallbackBaseline = model.Baseline{
	ReferenceYear:   2025,
	SolarMWh:        15_000_000,
	WindOnshoreMWh:  35_000_000,
	WindOffshoreMWh: 5_000_000,
}

// EstimateBaseline derives the per-technology reference values for a
// projection from a historical series.
//
// The regression methods evaluate the fitted line at the reference year
// rather than taking the final observation: that smooths single-year noise
// while still anchoring the baseline at the present. Each technology is fit
// independently. A rapidly declining series can legitimately yield a
// negative fitted baseline; values are not floored at zero (known
// limitation, kept to match the dashboard's published figures).
func EstimateBaseline(series []model.GenerationRecord, method model.BaselineMethod) (model.Baseline, error) {
	refYear, ok := model.MaxYear(series)
	if !ok {
		return model.Baseline{}, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	switch method {
	case model.MethodLatestYear:
		for _, r := range series {
			if r.Year == refYear {
				return model.Baseline{
					ReferenceYear:   refYear,
					SolarMWh:        r.SolarMWh,
					WindOnshoreMWh:  r.WindOnshoreMWh,
					WindOffshoreMWh: r.WindOffshoreMWh,
				}, nil
			}
		}
		// Unreachable: refYear came from the series.
		return model.Baseline{}, fmt.Errorf("%w: reference year %d not present", ErrInsufficientData, refYear)

	case model.MethodRecentAverage:
		window := windowFrom(series, refYear-model.RecentAverageWindow+1)
		return averageBaseline(window, refYear), nil

	case model.MethodRecentTrend:
		window := windowFrom(series, refYear-model.RecentTrendWindow+1)
		return trendBaseline(window, refYear)

	case model.MethodFullTrend:
		return trendBaseline(series, refYear)

	default:
		return model.Baseline{}, fmt.Errorf("%w: %s", model.ErrUnknownMethod, method)
	}
}

// windowFrom keeps records with Year >= from. Years missing inside the
// window are simply excluded, no imputation.
func windowFrom(series []model.GenerationRecord, from int) []model.GenerationRecord {
	out := make([]model.GenerationRecord, 0, len(series))
	for _, r := range series {
		if r.Year >= from {
			out = append(out, r)
		}
	}
	return out
}

func averageBaseline(window []model.GenerationRecord, refYear int) model.Baseline {
	solar := make([]float64, len(window))
	onshore := make([]float64, len(window))
	offshore := make([]float64, len(window))
	for i, r := range window {
		solar[i] = r.SolarMWh
		onshore[i] = r.WindOnshoreMWh
		offshore[i] = r.WindOffshoreMWh
	}
	return model.Baseline{
		ReferenceYear:   refYear,
		SolarMWh:        stat.Mean(solar, nil),
		WindOnshoreMWh:  stat.Mean(onshore, nil),
		WindOffshoreMWh: stat.Mean(offshore, nil),
	}
}

func trendBaseline(window []model.GenerationRecord, refYear int) (model.Baseline, error) {
	if distinctYears(window) < 2 {
		return model.Baseline{}, fmt.Errorf("%w: regression window needs at least 2 distinct years, got %d", ErrInsufficientData, distinctYears(window))
	}

	years := make([]float64, len(window))
	solar := make([]float64, len(window))
	onshore := make([]float64, len(window))
	offshore := make([]float64, len(window))
	for i, r := range window {
		years[i] = float64(r.Year)
		solar[i] = r.SolarMWh
		onshore[i] = r.WindOnshoreMWh
		offshore[i] = r.WindOffshoreMWh
	}

	x := float64(refYear)
	return model.Baseline{
		ReferenceYear:   refYear,
		SolarMWh:        fitAt(years, solar, x),
		WindOnshoreMWh:  fitAt(years, onshore, x),
		WindOffshoreMWh: fitAt(years, offshore, x),
	}, nil
}

// fitAt evaluates the ordinary least-squares line of ys on xs at x.
func fitAt(xs, ys []float64, x float64) float64 {
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return alpha + beta*x
}

func distinctYears(series []model.GenerationRecord) int {
	seen := make(map[int]struct{}, len(series))
	for _, r := range series {
		seen[r.Year] = struct{}{}
	}
	return len(seen)
}
