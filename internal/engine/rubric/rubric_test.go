package rubric_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrWong99/lexivox/internal/engine/rubric"
)

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	w := rubric.DefaultWeights()
	want := rubric.Weights{Mispronunciation: 50, Omission: 70, Insertion: 30, Threshold: 3}
	if w != want {
		t.Errorf("DefaultWeights() = %+v, want %+v", w, want)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("DefaultWeights().Validate() = %v, want nil", err)
	}
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w       rubric.Weights
		wantErr bool
	}{
		{"defaults", rubric.DefaultWeights(), false},
		{"all zero", rubric.Weights{}, false},
		{"all max", rubric.Weights{Mispronunciation: 100, Omission: 100, Insertion: 100, Threshold: 10}, false},
		{"mispronunciation too high", rubric.Weights{Mispronunciation: 101}, true},
		{"omission negative", rubric.Weights{Omission: -1}, true},
		{"insertion too high", rubric.Weights{Insertion: 200}, true},
		{"negative threshold", rubric.Weights{Threshold: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.w.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%+v) = %v, wantErr %v", tc.w, err, tc.wantErr)
			}
		})
	}
}

func TestWeights_ValidateReportsAllViolations(t *testing.T) {
	t.Parallel()

	w := rubric.Weights{Mispronunciation: -5, Omission: 300, Insertion: 30, Threshold: -2}
	err := w.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want joined error")
	}
	for _, substr := range []string{"mispronunciation", "omission", "threshold"} {
		if !strings.Contains(err.Error(), substr) {
			t.Errorf("Validate() error %q does not mention %q", err, substr)
		}
	}
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rubric.yaml")
	content := "mispronunciation: 40\nomission: 60\ninsertion: 20\nthreshold: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	src := &rubric.FileSource{Path: path}
	w, err := src.Weights(context.Background(), "")
	if err != nil {
		t.Fatalf("Weights() error = %v", err)
	}
	want := rubric.Weights{Mispronunciation: 40, Omission: 60, Insertion: 20, Threshold: 2}
	if w != want {
		t.Errorf("Weights() = %+v, want %+v", w, want)
	}
}

func TestFileSource_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rubric.yaml")
	if err := os.WriteFile(path, []byte("mispronunciation: 150\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src := &rubric.FileSource{Path: path}
	if _, err := src.Weights(context.Background(), ""); err == nil {
		t.Error("Weights() = nil error for out-of-range rubric, want error")
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	t.Parallel()

	src := &rubric.FileSource{Path: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := src.Weights(context.Background(), ""); err == nil {
		t.Error("Weights() = nil error for missing file, want error")
	}
}

// failingSource always errors, for exercising resolution fallback.
type failingSource struct{}

func (failingSource) Weights(context.Context, string) (rubric.Weights, error) {
	return rubric.Weights{}, errors.New("store unavailable")
}

func TestResolve_FallsBackThroughSources(t *testing.T) {
	t.Parallel()

	custom := rubric.Weights{Mispronunciation: 10, Omission: 20, Insertion: 5, Threshold: 1}
	got := rubric.Resolve(context.Background(), "speaker-1",
		failingSource{},
		&rubric.Static{W: custom},
	)
	if got != custom {
		t.Errorf("Resolve() = %+v, want second source's %+v", got, custom)
	}
}

func TestResolve_DefaultsWhenAllFail(t *testing.T) {
	t.Parallel()

	got := rubric.Resolve(context.Background(), "", failingSource{}, failingSource{})
	if got != rubric.DefaultWeights() {
		t.Errorf("Resolve() = %+v, want defaults", got)
	}
}

func TestResolve_NoSources(t *testing.T) {
	t.Parallel()

	if got := rubric.Resolve(context.Background(), ""); got != rubric.DefaultWeights() {
		t.Errorf("Resolve() = %+v, want defaults", got)
	}
}
