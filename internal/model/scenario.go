package model

import (
	"errors"
	"fmt"
)

// ScenarioPreset names a fixed set of growth-rate parameters representing a
// policy scenario. Like BaselineMethod it is a closed enumeration; the
// parameter table lives in presetTable below rather than scattered literals.
type ScenarioPreset int

const (
	PresetConservative ScenarioPreset = iota
	PresetBusinessAsUsual
	PresetAmbitious
	PresetCustom
)

var (
	// ErrUnknownPreset is returned by ParsePreset for names outside the set.
	ErrUnknownPreset = errors.New("unknown scenario preset")
	// ErrMissingParameter is returned when the Custom preset is resolved
	// without all three growth rates supplied.
	ErrMissingParameter = errors.New("missing custom scenario parameter")
)

const (
	presetConservativeName    = "conservative"
	presetBusinessAsUsualName = "business_as_usual"
	presetAmbitiousName       = "ambitious"
	presetCustomName          = "custom"
)

func (p ScenarioPreset) String() string {
	switch p {
	case PresetConservative:
		return presetConservativeName
	case PresetBusinessAsUsual:
		return presetBusinessAsUsualName
	case PresetAmbitious:
		return presetAmbitiousName
	case PresetCustom:
		return presetCustomName
	default:
		return fmt.Sprintf("scenario_preset(%d)", int(p))
	}
}

func ParsePreset(name string) (ScenarioPreset, error) {
	switch name {
	case presetConservativeName:
		return PresetConservative, nil
	case presetBusinessAsUsualName:
		return PresetBusinessAsUsual, nil
	case presetAmbitiousName:
		return PresetAmbitious, nil
	case presetCustomName:
		return PresetCustom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// NamedPresets returns the three non-custom presets in a stable order.
func NamedPresets() []ScenarioPreset {
	return []ScenarioPreset{PresetConservative, PresetBusinessAsUsual, PresetAmbitious}
}

// ScenarioParameters are fractional annual growth rates plus the 2050
// renewable-share target the share ramp converges to.
type ScenarioParameters struct {
	SolarGrowth              float64 `json:"solar_growth"`
	WindOnshoreGrowth        float64 `json:"wind_onshore_growth"`
	WindOffshoreGrowth       float64 `json:"wind_offshore_growth"`
	RenewableShareTarget2050 float64 `json:"renewable_share_target_2050"`
}

// CustomRates carries caller-supplied growth rates for the Custom preset.
// Pointers distinguish "not supplied" from a legitimate zero rate; the
// implicit capture of UI state the dashboard prototype relied on is replaced
// by these explicit parameters.
type CustomRates struct {
	SolarGrowth        *float64 `json:"solar_growth"`
	WindOnshoreGrowth  *float64 `json:"wind_onshore_growth"`
	WindOffshoreGrowth *float64 `json:"wind_offshore_growth"`
}

// customShareTarget2050 is fixed for custom scenarios; only growth rates are
// caller-tunable.
const customShareTarget2050 = 0.90

var presetTable = map[ScenarioPreset]ScenarioParameters{
	PresetConservative: {
		SolarGrowth:              0.04,
		WindOnshoreGrowth:        0.02,
		WindOffshoreGrowth:       0.06,
		RenewableShareTarget2050: 0.70,
	},
	PresetBusinessAsUsual: {
		SolarGrowth:              0.075,
		WindOnshoreGrowth:        0.04,
		WindOffshoreGrowth:       0.12,
		RenewableShareTarget2050: 0.85,
	},
	PresetAmbitious: {
		SolarGrowth:              0.12,
		WindOnshoreGrowth:        0.07,
		WindOffshoreGrowth:       0.18,
		RenewableShareTarget2050: 0.95,
	},
}

// ResolvePreset maps a preset to concrete parameters. For PresetCustom all
// three growth rates must be supplied via custom; for the named presets
// custom is ignored.
func ResolvePreset(preset ScenarioPreset, custom *CustomRates) (ScenarioParameters, error) {
	if preset == PresetCustom {
		if custom == nil {
			return ScenarioParameters{}, fmt.Errorf("%w: custom rates are required", ErrMissingParameter)
		}
		if custom.SolarGrowth == nil {
			return ScenarioParameters{}, fmt.Errorf("%w: solar_growth", ErrMissingParameter)
		}
		if custom.WindOnshoreGrowth == nil {
			return ScenarioParameters{}, fmt.Errorf("%w: wind_onshore_growth", ErrMissingParameter)
		}
		if custom.WindOffshoreGrowth == nil {
			return ScenarioParameters{}, fmt.Errorf("%w: wind_offshore_growth", ErrMissingParameter)
		}
		return ScenarioParameters{
			SolarGrowth:              *custom.SolarGrowth,
			WindOnshoreGrowth:        *custom.WindOnshoreGrowth,
			WindOffshoreGrowth:       *custom.WindOffshoreGrowth,
			RenewableShareTarget2050: customShareTarget2050,
		}, nil
	}
	params, ok := presetTable[preset]
	if !ok {
		return ScenarioParameters{}, fmt.Errorf("%w: %s", ErrUnknownPreset, preset)
	}
	return params, nil
}
