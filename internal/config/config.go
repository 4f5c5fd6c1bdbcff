// Package config loads the gaitwarp host configuration from YAML.
//
// Every field has a default, so an absent file or an empty document yields a
// usable Config. Load validates the merged result.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gaitwarp/render"
	"github.com/katalvlaran/gaitwarp/signal"
)

var (
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrSequenceTooLong indicates a sequence above engine.max_samples.
	ErrSequenceTooLong = errors.New("config: sequence exceeds max_samples")
)

// Config is the complete host configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Signal SignalConfig `yaml:"signal"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig bounds the work handed to the alignment engine.
type EngineConfig struct {
	MaxSamples int `yaml:"max_samples"` // per sequence; the matrix grows with the product
}

// SignalConfig drives the synthetic case generator.
type SignalConfig struct {
	Seed             uint64 `yaml:"seed"`
	ReferenceSamples int    `yaml:"reference_samples"`
	SlowSamples      int    `yaml:"slow_samples"`
}

// RenderConfig holds presentation defaults.
type RenderConfig struct {
	TableLimit     int     `yaml:"table_limit"`     // samples per axis in the DP table
	FrameStep      int     `yaml:"frame_step"`      // path points per animation frame
	ConnectorEvery int     `yaml:"connector_every"` // correspondence lines in the signal plot
	Offset         float64 `yaml:"offset"`          // vertical offset of the patient trace
	HeatmapAxis    int     `yaml:"heatmap_axis"`    // max heatmap cells per axis
}

// LogConfig selects the log level (trace, debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	so := signal.DefaultOptions()
	po := render.DefaultPlotOptions()

	return &Config{
		Engine: EngineConfig{MaxSamples: 5000},
		Signal: SignalConfig{Seed: so.Seed, ReferenceSamples: so.ReferenceSamples, SlowSamples: so.SlowSamples},
		Render: RenderConfig{
			TableLimit:     render.DefaultTableLimit,
			FrameStep:      render.DefaultFrameStep,
			ConnectorEvery: po.ConnectorEvery,
			Offset:         po.Offset,
			HeatmapAxis:    render.DefaultHeatmapOptions().MaxAxis,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures every limit is usable.
func (c *Config) Validate() error {
	switch {
	case c.Engine.MaxSamples < 1:
		return fmt.Errorf("%w: engine.max_samples must be positive, got %d", ErrInvalidConfig, c.Engine.MaxSamples)
	case c.Signal.ReferenceSamples < 2 || c.Signal.SlowSamples < 2:
		return fmt.Errorf("%w: signal sample counts must be >= 2, got %d/%d",
			ErrInvalidConfig, c.Signal.ReferenceSamples, c.Signal.SlowSamples)
	case c.Render.TableLimit < 1:
		return fmt.Errorf("%w: render.table_limit must be positive, got %d", ErrInvalidConfig, c.Render.TableLimit)
	case c.Render.FrameStep < 1:
		return fmt.Errorf("%w: render.frame_step must be positive, got %d", ErrInvalidConfig, c.Render.FrameStep)
	case c.Render.ConnectorEvery < 1:
		return fmt.Errorf("%w: render.connector_every must be positive, got %d", ErrInvalidConfig, c.Render.ConnectorEvery)
	case c.Render.HeatmapAxis < 1:
		return fmt.Errorf("%w: render.heatmap_axis must be positive, got %d", ErrInvalidConfig, c.Render.HeatmapAxis)
	}

	return nil
}

// CheckLength rejects a sequence longer than engine.max_samples before any
// matrix is allocated.
func (c *Config) CheckLength(name string, n int) error {
	if n > c.Engine.MaxSamples {
		return fmt.Errorf("%w: %s has %d samples, limit %d", ErrSequenceTooLong, name, n, c.Engine.MaxSamples)
	}

	return nil
}
