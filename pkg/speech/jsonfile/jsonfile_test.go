package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrWong99/lexivox/pkg/speech/jsonfile"
)

const sampleExport = `{
  "words": [
    {"word": "the", "start": 0.42, "end": 0.61},
    {"word": "cat", "start": 0.66, "end": 0.98},
    {"word": "sat", "start": 1.05, "end": 1.4}
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	tr, err := jsonfile.Decode([]byte(sampleExport))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(tr.Words) != 3 {
		t.Fatalf("Decode() produced %d words, want 3", len(tr.Words))
	}
	if tr.Words[0].Text != "the" {
		t.Errorf("Words[0].Text = %q, want %q", tr.Words[0].Text, "the")
	}
	if want := 420 * time.Millisecond; tr.Words[0].Start != want {
		t.Errorf("Words[0].Start = %v, want %v", tr.Words[0].Start, want)
	}
	if want := 610 * time.Millisecond; tr.Words[0].End != want {
		t.Errorf("Words[0].End = %v, want %v", tr.Words[0].End, want)
	}
	if tr.Text() != "the cat sat" {
		t.Errorf("Text() = %q, want %q", tr.Text(), "the cat sat")
	}
}

func TestDecode_EmptyWords(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{`{}`, `{"words": []}`} {
		tr, err := jsonfile.Decode([]byte(doc))
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", doc, err)
		}
		if len(tr.Words) != 0 {
			t.Errorf("Decode(%q) produced %d words, want 0", doc, len(tr.Words))
		}
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := jsonfile.Decode([]byte(`{"words": [`)); err == nil {
		t.Error("Decode() = nil error for malformed JSON, want error")
	}
}

func TestReader_Transcribe(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "attempt.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0o600); err != nil {
		t.Fatal(err)
	}

	tr, err := jsonfile.New().Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if tr.Text() != "the cat sat" {
		t.Errorf("Text() = %q, want %q", tr.Text(), "the cat sat")
	}
}

func TestReader_TranscribeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := jsonfile.New().Transcribe(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Error("Transcribe() = nil error for missing file, want error")
	}
}

func TestReader_TranscribeCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := jsonfile.New().Transcribe(ctx, "irrelevant.json"); err == nil {
		t.Error("Transcribe() = nil error for cancelled context, want error")
	}
}
