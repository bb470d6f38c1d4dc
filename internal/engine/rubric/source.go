package rubric

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Source supplies a rubric for a speaker. Implementations wrap wherever the
// rubric actually lives — a YAML file, a per-speaker document store, a
// hard-coded policy. Implementations must be safe for concurrent use.
type Source interface {
	// Weights returns the rubric for the given speaker ID. speakerID may be
	// empty when no identity is known; sources that key by speaker should
	// then return their default entry or an error.
	Weights(ctx context.Context, speakerID string) (Weights, error)
}

// FileSource reads the rubric from a YAML file on every lookup. The file
// holds a single [Weights] document:
//
//	mispronunciation: 50
//	omission: 70
//	insertion: 30
//	threshold: 3
//
// FileSource ignores speakerID — one file, one rubric. Stateless and safe
// for concurrent use.
type FileSource struct {
	// Path is the YAML file to read.
	Path string
}

// Compile-time interface check.
var _ Source = (*FileSource)(nil)

// Weights reads, decodes, and validates the rubric file.
func (s *FileSource) Weights(ctx context.Context, _ string) (Weights, error) {
	if err := ctx.Err(); err != nil {
		return Weights{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Weights{}, fmt.Errorf("rubric: read %q: %w", s.Path, err)
	}

	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("rubric: decode %q: %w", s.Path, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Static is a [Source] that always returns a fixed rubric. Useful in tests
// and as an explicit terminal entry in a resolution chain.
type Static struct {
	W Weights
}

// Compile-time interface check.
var _ Source = (*Static)(nil)

// Weights returns the fixed rubric after validating it.
func (s *Static) Weights(_ context.Context, _ string) (Weights, error) {
	if err := s.W.Validate(); err != nil {
		return Weights{}, err
	}
	return s.W, nil
}

// Resolve walks sources in order and returns the first valid rubric. Failed
// sources are logged at debug level and skipped. When every source fails —
// or none are given — Resolve falls back to [DefaultWeights], so the engine
// always runs with a usable rubric.
func Resolve(ctx context.Context, speakerID string, sources ...Source) Weights {
	for _, src := range sources {
		w, err := src.Weights(ctx, speakerID)
		if err != nil {
			slog.Debug("rubric source failed, trying next",
				"speaker_id", speakerID, "error", err)
			continue
		}
		return w
	}
	return DefaultWeights()
}
