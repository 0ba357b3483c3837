package projection

import (
	"energy-dashboard/internal/model"
)

// CompareMethods runs one scenario under every baseline method and returns
// the results keyed by method name, for side-by-side rendering. Methods the
// series cannot support fall back to FallbackBaseline (flagged per result)
// so a short series still yields all four curves.
func CompareMethods(series []model.GenerationRecord, preset model.ScenarioPreset, custom *model.CustomRates, horizonYear int) (map[string]*Result, error) {
	out := make(map[string]*Result, 4)
	for _, method := range model.AllMethods() {
		res, err := Run(series, Request{
			Method:        method,
			Preset:        preset,
			Custom:        custom,
			HorizonYear:   horizonYear,
			AllowFallback: true,
		})
		if err != nil {
			return nil, err
		}
		out[method.String()] = res
	}
	return out, nil
}

// CompareScenarios runs every named preset (plus Custom when rates are
// supplied) under one baseline method, keyed by scenario name.
func CompareScenarios(series []model.GenerationRecord, method model.BaselineMethod, custom *model.CustomRates, horizonYear int) (map[string]*Result, error) {
	presets := model.NamedPresets()
	if custom != nil {
		presets = append(presets, model.PresetCustom)
	}

	out := make(map[string]*Result, len(presets))
	for _, preset := range presets {
		res, err := Run(series, Request{
			Method:        method,
			Preset:        preset,
			Custom:        custom,
			HorizonYear:   horizonYear,
			AllowFallback: true,
		})
		if err != nil {
			return nil, err
		}
		out[preset.String()] = res
	}
	return out, nil
}
