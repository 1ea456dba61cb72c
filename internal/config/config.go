// SPDX-License-Identifier: EPL-2.0

// Package config loads the audcap YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audcap/utils"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the audcap configuration file.
type Config struct {
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CaptureConfig sizes the capture stage and its output queue.
type CaptureConfig struct {
	FrameSize  int    `yaml:"frame_size"`  // samples per emitted frame
	Tick       int    `yaml:"tick"`        // sample frames per render callback
	SampleRate int    `yaml:"sample_rate"` // live capture only
	Rounding   string `yaml:"rounding"`    // truncate or nearest
	QueueDepth int    `yaml:"queue_depth"` // frames
	PoolSize   int    `yaml:"pool_size"`   // frames
	MonoMix    bool   `yaml:"mono_mix"`
}

// LoggingConfig selects the zap level and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// MetricsConfig enables the Prometheus endpoint when Address is set.
type MetricsConfig struct {
	Address string `yaml:"address"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Capture: CaptureConfig{
			FrameSize:  4096,
			Tick:       128,
			SampleRate: 48000,
			Rounding:   utils.Truncate.String(),
			QueueDepth: 16,
			PoolSize:   32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section and reports the first invalid one.
func (c *Config) Validate() error {
	if err := c.Capture.Validate(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

func (c *CaptureConfig) Validate() error {
	if c.FrameSize < 1 {
		return fmt.Errorf("%w: frame_size must be positive, got %d", ErrInvalidConfig, c.FrameSize)
	}

	if c.Tick < 1 {
		return fmt.Errorf("%w: tick must be positive, got %d", ErrInvalidConfig, c.Tick)
	}

	if c.SampleRate < 1 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	if _, err := utils.ParseRounding(c.Rounding); err != nil {
		return fmt.Errorf("%w: rounding: %w", ErrInvalidConfig, err)
	}

	if c.QueueDepth < 1 {
		return fmt.Errorf("%w: queue_depth must be positive, got %d", ErrInvalidConfig, c.QueueDepth)
	}

	if c.PoolSize < 1 {
		return fmt.Errorf("%w: pool_size must be positive, got %d", ErrInvalidConfig, c.PoolSize)
	}

	return nil
}

// RoundingMode returns the parsed Rounding. Validate must have passed.
func (c *CaptureConfig) RoundingMode() utils.Rounding {
	mode, _ := utils.ParseRounding(c.Rounding)
	return mode
}

func (l *LoggingConfig) Validate() error {
	if _, err := zap.ParseAtomicLevel(l.Level); err != nil {
		return fmt.Errorf("%w: level: %w", ErrInvalidConfig, err)
	}

	switch l.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: format must be json or console, got %q", ErrInvalidConfig, l.Format)
	}

	return nil
}

// Logger builds a zap logger: production settings for json, development
// settings for console.
func (l *LoggingConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: level: %w", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if l.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}

func (m *MetricsConfig) Validate() error {
	if m.Address != "" && (m.Path == "" || m.Path[0] != '/') {
		return fmt.Errorf("%w: path must start with /, got %q", ErrInvalidConfig, m.Path)
	}

	return nil
}

// Enabled reports whether the metrics endpoint should be served.
func (m *MetricsConfig) Enabled() bool { return m.Address != "" }
