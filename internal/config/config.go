// Package config loads remapper settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/user/map_remapper_go/internal/format"
	"github.com/user/map_remapper_go/internal/remap"
	"github.com/user/map_remapper_go/internal/report"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "remapper.yaml"

// Config holds all remapper configuration.
type Config struct {
	// Fractional digits of every text artifact.
	Decimals int `yaml:"decimals"`
	// Reject original axes that are not strictly monotonic.
	StrictAxes bool `yaml:"strict_axes"`

	Server  ServerConfig  `yaml:"server"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ReportConfig sizes the rendered plots, in points.
type ReportConfig struct {
	HeatmapWidth  float64 `yaml:"heatmap_width"`
	HeatmapHeight float64 `yaml:"heatmap_height"`
	LineWidth     float64 `yaml:"line_width"`
	LineHeight    float64 `yaml:"line_height"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Decimals: format.DefaultDecimals,
		Server: ServerConfig{
			Addr: ":8080",
		},
		Report: ReportConfig{
			HeatmapWidth:  800,
			HeatmapHeight: 500,
			LineWidth:     800,
			LineHeight:    400,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("REMAPPER_DECIMALS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			c.Decimals = d
		}
	}
	if addr := os.Getenv("REMAPPER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Decimals < 0 || c.Decimals > 12 {
		return fmt.Errorf("decimals must be between 0 and 12, got %d", c.Decimals)
	}
	if c.Report.HeatmapWidth <= 0 || c.Report.HeatmapHeight <= 0 || c.Report.LineWidth <= 0 || c.Report.LineHeight <= 0 {
		return fmt.Errorf("report plot sizes must be positive")
	}
	return nil
}

// RemapOptions returns the engine options these settings imply.
func (c *Config) RemapOptions() remap.Options {
	return remap.Options{
		Decimals:   c.Decimals,
		StrictAxes: c.StrictAxes,
	}
}

// PlotSizes returns the report plot sizes as vg lengths.
func (c *Config) PlotSizes() report.PlotSizes {
	return report.PlotSizes{
		HeatmapWidth:  vg.Points(c.Report.HeatmapWidth),
		HeatmapHeight: vg.Points(c.Report.HeatmapHeight),
		LineWidth:     vg.Points(c.Report.LineWidth),
		LineHeight:    vg.Points(c.Report.LineHeight),
	}
}
