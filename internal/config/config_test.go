package config

import (
	"os"
	"path/filepath"
	"testing"

	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  generation_file: gen.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./web/dist", cfg.Server.StaticDir)
	assert.Equal(t, "recent_average_3", cfg.Projection.Method)
	assert.Equal(t, "business_as_usual", cfg.Projection.Scenario)
	assert.Equal(t, 2050, cfg.Projection.HorizonYear)
	assert.Equal(t, 2015, cfg.History.StartYear)
	assert.Equal(t, 2025, cfg.History.EndYear)
}

func TestLoadResolvesRelativeDataPaths(t *testing.T) {
	dir := t.TempDir()
	genPath := filepath.Join(dir, "gen.csv")
	require.NoError(t, os.WriteFile(genPath, []byte("year\n"), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
data:
  generation_file: gen.csv
`), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	// Resolved relative to the config directory since the file exists there.
	assert.Equal(t, genPath, cfg.Data.GenerationFile)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  generation_file: gen.csv
server:
  port: "9090"
projection:
  method: full_trend
  scenario: ambitious
  horizon_year: 2040
history:
  start_year: 2018
  end_year: 2024
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "full_trend", cfg.Projection.Method)
	assert.Equal(t, "ambitious", cfg.Projection.Scenario)
	assert.Equal(t, 2040, cfg.Projection.HorizonYear)
	assert.Equal(t, 2018, cfg.History.StartYear)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing generation file", `
server:
  port: "8080"
`},
		{"unknown method", `
data:
  generation_file: gen.csv
projection:
  method: moving_average
`},
		{"unknown scenario", `
data:
  generation_file: gen.csv
projection:
  scenario: moonshot
`},
		{"custom as default scenario", `
data:
  generation_file: gen.csv
projection:
  scenario: custom
`},
		{"horizon before projection window", `
data:
  generation_file: gen.csv
projection:
  horizon_year: 2020
`},
		{"history range inverted", `
data:
  generation_file: gen.csv
history:
  start_year: 2024
  end_year: 2018
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestFallbackBaselineOverride(t *testing.T) {
	path := writeConfig(t, `
data:
  generation_file: gen.csv
projection:
  fallback_baseline:
    reference_year: 2024
    solar_mwh: 1000
    wind_onshore_mwh: 2000
    wind_offshore_mwh: 300
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Projection.FallbackBaseline)
	assert.Equal(t, 2024, cfg.Projection.FallbackBaseline.ReferenceYear)

	orig := projection.FallbackBaseline
	t.Cleanup(func() { projection.FallbackBaseline = orig })

	cfg.Projection.FallbackBaseline.Apply()
	assert.Equal(t, model.Baseline{
		ReferenceYear:   2024,
		SolarMWh:        1000,
		WindOnshoreMWh:  2000,
		WindOffshoreMWh: 300,
	}, projection.FallbackBaseline)

	// Nil override is a no-op.
	var none *FallbackBaselineConfig
	none.Apply()
	assert.Equal(t, 2024, projection.FallbackBaseline.ReferenceYear)
}

func TestFallbackBaselineOverrideNeedsReferenceYear(t *testing.T) {
	_, err := Load(writeConfig(t, `
data:
  generation_file: gen.csv
projection:
  fallback_baseline:
    solar_mwh: 1000
`))
	assert.Error(t, err)
}

func TestLoadUncheckedSkipsValidation(t *testing.T) {
	path := writeConfig(t, `
projection:
  method: moving_average
`)

	cfg, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, "moving_average", cfg.Projection.Method)
	assert.Error(t, cfg.Validate())
}
