package model

import (
	"errors"
	"fmt"
)

// BaselineMethod selects how the projection baseline is derived from the
// historical series. The set is closed; handlers parse incoming names with
// ParseMethod so misspelled methods fail before any arithmetic runs.
type BaselineMethod int

const (
	// MethodLatestYear takes the most recent year's values verbatim.
	MethodLatestYear BaselineMethod = iota
	// MethodRecentAverage averages the last RecentAverageWindow present years.
	MethodRecentAverage
	// MethodRecentTrend fits a linear trend over the last RecentTrendWindow
	// years and evaluates it at the reference year.
	MethodRecentTrend
	// MethodFullTrend fits a linear trend over the entire series.
	MethodFullTrend
)

const (
	RecentAverageWindow = 3
	RecentTrendWindow   = 5
)

// ErrUnknownMethod is returned by ParseMethod for names outside the closed set.
var ErrUnknownMethod = errors.New("unknown baseline method")

// Keep these values stable; they are used in CSV output and the API.
const (
	methodLatestYearName    = "latest_year"
	methodRecentAverageName = "recent_average_3"
	methodRecentTrendName   = "recent_trend_5"
	methodFullTrendName     = "full_trend"
)

func (m BaselineMethod) String() string {
	switch m {
	case MethodLatestYear:
		return methodLatestYearName
	case MethodRecentAverage:
		return methodRecentAverageName
	case MethodRecentTrend:
		return methodRecentTrendName
	case MethodFullTrend:
		return methodFullTrendName
	default:
		return fmt.Sprintf("baseline_method(%d)", int(m))
	}
}

func ParseMethod(name string) (BaselineMethod, error) {
	switch name {
	case methodLatestYearName:
		return MethodLatestYear, nil
	case methodRecentAverageName:
		return MethodRecentAverage, nil
	case methodRecentTrendName:
		return MethodRecentTrend, nil
	case methodFullTrendName:
		return MethodFullTrend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// AllMethods returns the closed set in a stable order, for comparison runs
// and for listing in the API.
func AllMethods() []BaselineMethod {
	return []BaselineMethod{
		MethodLatestYear,
		MethodRecentAverage,
		MethodRecentTrend,
		MethodFullTrend,
	}
}

// Baseline is the per-technology reference values a projection compounds
// forward from. It is a pure value derived once per (series, method) pair;
// it holds no reference back to its inputs.
type Baseline struct {
	ReferenceYear   int     `json:"reference_year"`
	SolarMWh        float64 `json:"solar_mwh"`
	WindOnshoreMWh  float64 `json:"wind_onshore_mwh"`
	WindOffshoreMWh float64 `json:"wind_offshore_mwh"`
}
