// Package config provides the configuration schema and loader for the
// Lexivox CLI.
package config

import (
	"errors"
	"fmt"

	"github.com/MrWong99/lexivox/internal/engine/rubric"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for Lexivox.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	LogLevel  LogLevel        `yaml:"log_level"`
	Rubric    RubricConfig    `yaml:"rubric"`
	Engine    EngineConfig    `yaml:"engine"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// RubricConfig declares where rubric weights come from. Resolution order:
// inline weights, then the rubric file, then built-in defaults.
type RubricConfig struct {
	// File is the path to a YAML rubric file (see [rubric.FileSource]).
	// Empty disables the file source.
	File string `yaml:"file"`

	// Weights is an inline rubric that takes precedence over File.
	Weights *rubric.Weights `yaml:"weights"`
}

// Sources returns the configured rubric sources in resolution order,
// suitable for passing to [rubric.Resolve].
func (rc RubricConfig) Sources() []rubric.Source {
	var sources []rubric.Source
	if rc.Weights != nil {
		sources = append(sources, &rubric.Static{W: *rc.Weights})
	}
	if rc.File != "" {
		sources = append(sources, &rubric.FileSource{Path: rc.File})
	}
	return sources
}

// EngineConfig holds analysis engine settings.
type EngineConfig struct {
	// BatchLimit caps how many transcript files are analysed in parallel in
	// batch mode. Zero means the engine default.
	BatchLimit int `yaml:"batch_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	// Enabled turns on the OTel metric/trace providers.
	Enabled bool `yaml:"enabled"`

	// ServiceName overrides the service name reported in telemetry.
	ServiceName string `yaml:"service_name"`
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.Engine.BatchLimit < 0 {
		errs = append(errs, fmt.Errorf("engine.batch_limit %d must not be negative", cfg.Engine.BatchLimit))
	}
	if cfg.Rubric.Weights != nil {
		if err := cfg.Rubric.Weights.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rubric.weights: %w", err))
		}
	}

	return errors.Join(errs...)
}
