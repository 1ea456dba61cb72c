// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audcap/utils"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audcap.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Capture.FrameSize != 4096 {
		t.Errorf("default frame_size = %d, want 4096", cfg.Capture.FrameSize)
	}
	if cfg.Capture.RoundingMode() != utils.Truncate {
		t.Errorf("default rounding = %v, want truncate", cfg.Capture.RoundingMode())
	}
	if cfg.Metrics.Enabled() {
		t.Error("metrics enabled by default")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
capture:
  frame_size: 1024
  rounding: nearest
  mono_mix: true
logging:
  level: debug
  format: console
metrics:
  address: ":9100"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Capture.FrameSize != 1024 {
		t.Errorf("frame_size = %d, want 1024", cfg.Capture.FrameSize)
	}
	if cfg.Capture.RoundingMode() != utils.RoundNearest {
		t.Errorf("rounding = %v, want nearest", cfg.Capture.RoundingMode())
	}
	if !cfg.Capture.MonoMix {
		t.Error("mono_mix = false, want true")
	}
	// Unset keys keep their defaults.
	if cfg.Capture.Tick != 128 || cfg.Capture.QueueDepth != 16 {
		t.Errorf("tick/queue_depth = %d/%d, want defaults 128/16", cfg.Capture.Tick, cfg.Capture.QueueDepth)
	}
	if !cfg.Metrics.Enabled() || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics = %+v, want enabled on /metrics", cfg.Metrics)
	}
}

func TestLoad_EmptyPathAndFile(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", writeConfig(t, "")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if cfg != Default() {
			t.Errorf("Load(%q) = %+v, want defaults", path, cfg)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "unknown key", body: "capture:\n  frame_sise: 10\n", want: ErrReadConfig},
		{name: "bad yaml", body: "capture: [\n", want: ErrReadConfig},
		{name: "zero frame size", body: "capture:\n  frame_size: 0\n", want: ErrInvalidConfig},
		{name: "negative tick", body: "capture:\n  tick: -1\n", want: ErrInvalidConfig},
		{name: "unknown rounding", body: "capture:\n  rounding: stochastic\n", want: utils.ErrUnknownRounding},
		{name: "bad level", body: "logging:\n  level: loud\n", want: ErrInvalidConfig},
		{name: "bad format", body: "logging:\n  format: xml\n", want: ErrInvalidConfig},
		{name: "bad metrics path", body: "metrics:\n  address: \":9100\"\n  path: metrics\n", want: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrReadConfig) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrReadConfig wrapping ErrNotExist", err)
	}
}

func TestLoggingConfig_Logger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{cfg: LoggingConfig{Level: "debug", Format: "console"}, want: zapcore.DebugLevel},
		{cfg: LoggingConfig{Level: "warn", Format: "json"}, want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Level, func(t *testing.T) {
			t.Parallel()

			log, err := tt.cfg.Logger()
			if err != nil {
				t.Fatalf("Logger() error = %v", err)
			}
			if !log.Core().Enabled(tt.want) {
				t.Errorf("level %v not enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
				t.Errorf("level %v enabled, want disabled", tt.want-1)
			}
		})
	}
}
