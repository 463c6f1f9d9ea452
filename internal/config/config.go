// Package config defines the pipeline configuration and its loader.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading accepts context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strings"
)

// Supported log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config contains process configuration. Ranking size and sport grouping
// are fixed and intentionally absent.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// InputPath is the results export to read.
	InputPath string `koanf:"input_path"`

	// InputFormat forces csv or xlsx; empty means by file extension.
	InputFormat string `koanf:"input_format"`

	// InputSheet names the worksheet of an XLSX input; empty means the first.
	InputSheet string `koanf:"input_sheet"`

	// OutputPath receives the summary document. "-" writes to stdout.
	OutputPath string `koanf:"output_path"`

	// MetricsPath, when set, receives a Prometheus textfile after the run.
	MetricsPath string `koanf:"metrics_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  LogFormatText,
		InputPath:  "raw-olympic-data.csv",
		OutputPath: "olympic-medals-v2.json",
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.InputPath) == "":
		return fmt.Errorf("%w: input_path must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.OutputPath) == "":
		return fmt.Errorf("%w: output_path must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.InputFormat) {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("%w: input_format %q is not csv or xlsx", ErrInvalidConfig, c.InputFormat)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q is not text or json", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
