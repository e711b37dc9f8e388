package config

import (
	"errors"

	"github.com/katalvlaran/graphsearch/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the YAML document.
type Config struct {
	// Capacity is the fixed vertex count of every initialized graph.
	Capacity int `yaml:"capacity"`

	// Prompt is printed before each command in interactive mode.
	Prompt string `yaml:"prompt"`

	// Color selects styled output: auto (terminal only), always or never.
	Color string `yaml:"color"`

	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig controls OpenTelemetry export.
type TelemetryConfig struct {
	// Output is a file path for stdout-exporter output. Empty disables export.
	Output string `yaml:"output,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: core.DefaultCapacity,
		Prompt:   "Enter a command: ",
		Color:    ColorAuto,
		Log: LogConfig{
			Level:  "warn",
			Format: FormatText,
		},
	}
}
