package config_test

import (
	"strings"
	"testing"

	"github.com/MrWong99/lexivox/internal/config"
	"github.com/MrWong99/lexivox/internal/engine/rubric"
)

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	yamlDoc := `
log_level: debug
rubric:
  file: /etc/lexivox/rubric.yaml
  weights:
    mispronunciation: 40
    omission: 60
    insertion: 20
    threshold: 2
engine:
  batch_limit: 8
telemetry:
  enabled: true
  service_name: lexivox-dev
`
	cfg, err := config.LoadFromReader(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Rubric.File != "/etc/lexivox/rubric.yaml" {
		t.Errorf("Rubric.File = %q", cfg.Rubric.File)
	}
	want := rubric.Weights{Mispronunciation: 40, Omission: 60, Insertion: 20, Threshold: 2}
	if cfg.Rubric.Weights == nil || *cfg.Rubric.Weights != want {
		t.Errorf("Rubric.Weights = %+v, want %+v", cfg.Rubric.Weights, want)
	}
	if cfg.Engine.BatchLimit != 8 {
		t.Errorf("Engine.BatchLimit = %d, want 8", cfg.Engine.BatchLimit)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.ServiceName != "lexivox-dev" {
		t.Errorf("Telemetry = %+v", cfg.Telemetry)
	}
}

func TestLoadFromReader_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("no_such_field: true\n"))
	if err == nil {
		t.Error("LoadFromReader() = nil error for unknown field, want error")
	}
}

func TestLoadFromReader_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("log_level: loud\n"))
	if err == nil {
		t.Error("LoadFromReader() = nil error for invalid log level, want error")
	}
}

func TestLoadFromReader_OutOfRangeWeights(t *testing.T) {
	t.Parallel()

	yamlDoc := `
rubric:
  weights:
    mispronunciation: 150
`
	_, err := config.LoadFromReader(strings.NewReader(yamlDoc))
	if err == nil {
		t.Error("LoadFromReader() = nil error for out-of-range weights, want error")
	}
}

func TestValidate_NegativeBatchLimit(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Engine: config.EngineConfig{BatchLimit: -1}}
	if err := config.Validate(cfg); err == nil {
		t.Error("Validate() = nil error for negative batch limit, want error")
	}
}

func TestRubricConfig_Sources(t *testing.T) {
	t.Parallel()

	w := rubric.DefaultWeights()
	tests := []struct {
		name string
		rc   config.RubricConfig
		want int
	}{
		{"empty", config.RubricConfig{}, 0},
		{"file only", config.RubricConfig{File: "rubric.yaml"}, 1},
		{"inline only", config.RubricConfig{Weights: &w}, 1},
		{"inline and file", config.RubricConfig{File: "rubric.yaml", Weights: &w}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.rc.Sources(); len(got) != tc.want {
				t.Errorf("Sources() returned %d sources, want %d", len(got), tc.want)
			}
		})
	}
}
