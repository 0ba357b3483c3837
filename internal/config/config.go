package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Server     ServerConfig     `yaml:"server"`
	Projection ProjectionConfig `yaml:"projection"`
	History    HistoryConfig    `yaml:"history"`
}

// DataConfig points at the pre-processed extracts. generation_file may be the
// normalized annual CSV or a raw SMARD workbook (.xlsx); only it is required.
type DataConfig struct {
	GenerationFile          string `yaml:"generation_file"`
	GenerationForecastFile  string `yaml:"generation_forecast_file"`
	ConsumptionFile         string `yaml:"consumption_file"`
	ConsumptionForecastFile string `yaml:"consumption_forecast_file"`
	CapacityFile            string `yaml:"capacity_file"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// ProjectionConfig carries the defaults the UI starts from. The dashboard
// opens on the 3-year average under business-as-usual.
type ProjectionConfig struct {
	Method      string `yaml:"method"`
	Scenario    string `yaml:"scenario"`
	HorizonYear int    `yaml:"horizon_year"`
	// FallbackBaseline optionally overrides the built-in baseline used when
	// the series cannot support the chosen method.
	FallbackBaseline *FallbackBaselineConfig `yaml:"fallback_baseline"`
}

// FallbackBaselineConfig mirrors model.Baseline in YAML form.
type FallbackBaselineConfig struct {
	ReferenceYear   int     `yaml:"reference_year"`
	SolarMWh        float64 `yaml:"solar_mwh"`
	WindOnshoreMWh  float64 `yaml:"wind_onshore_mwh"`
	WindOffshoreMWh float64 `yaml:"wind_offshore_mwh"`
}

// Apply installs the override on the projection package default.
func (f *FallbackBaselineConfig) Apply() {
	if f == nil {
		return
	}
	projection.FallbackBaseline = model.Baseline{
		ReferenceYear:   f.ReferenceYear,
		SolarMWh:        f.SolarMWh,
		WindOnshoreMWh:  f.WindOnshoreMWh,
		WindOffshoreMWh: f.WindOffshoreMWh,
	}
}

// HistoryConfig bounds the default year range of the historical views.
type HistoryConfig struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Data paths are interpreted relative to the config file directory so
	// configs stay portable across working directories.
	dir := filepath.Dir(path)
	for _, p := range []*string{
		&c.Data.GenerationFile,
		&c.Data.GenerationForecastFile,
		&c.Data.ConsumptionFile,
		&c.Data.ConsumptionForecastFile,
		&c.Data.CapacityFile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			cand := filepath.Join(dir, *p)
			if _, err := os.Stat(cand); err == nil {
				*p = cand
			}
		}
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "./web/dist"
	}
	if c.Projection.Method == "" {
		c.Projection.Method = model.MethodRecentAverage.String()
	}
	if c.Projection.Scenario == "" {
		c.Projection.Scenario = model.PresetBusinessAsUsual.String()
	}
	if c.Projection.HorizonYear == 0 {
		c.Projection.HorizonYear = projection.DefaultHorizonYear
	}
	if c.History.StartYear == 0 {
		c.History.StartYear = 2015
	}
	if c.History.EndYear == 0 {
		c.History.EndYear = 2025
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.GenerationFile == "" {
		return errors.New("data.generation_file is required")
	}
	if _, err := model.ParseMethod(c.Projection.Method); err != nil {
		return fmt.Errorf("projection.method invalid: %w", err)
	}
	preset, err := model.ParsePreset(c.Projection.Scenario)
	if err != nil {
		return fmt.Errorf("projection.scenario invalid: %w", err)
	}
	// Custom needs per-request rates, so it cannot be a standing default.
	if preset == model.PresetCustom {
		return errors.New("projection.scenario cannot default to custom")
	}
	if c.Projection.HorizonYear < 2026 {
		return fmt.Errorf("projection.horizon_year %d is before the projection window", c.Projection.HorizonYear)
	}
	if fb := c.Projection.FallbackBaseline; fb != nil && fb.ReferenceYear == 0 {
		return errors.New("projection.fallback_baseline.reference_year is required when overriding")
	}
	if c.History.StartYear > c.History.EndYear {
		return fmt.Errorf("history.start_year %d after end_year %d", c.History.StartYear, c.History.EndYear)
	}
	return nil
}
