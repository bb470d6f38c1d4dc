// Package jsonfile implements [speech.Transcriber] for word-level JSON
// transcript exports, the format produced by common offline transcribers
// (vosk, whisperX) when asked for word timestamps:
//
//	{
//	  "words": [
//	    {"word": "the", "start": 0.42, "end": 0.61},
//	    {"word": "cat", "start": 0.66, "end": 0.98}
//	  ]
//	}
//
// Timestamps are seconds from recording start. A missing or empty "words"
// array yields an empty [speech.Transcript], which the engine treats as
// total silence (every target word omitted).
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/MrWong99/lexivox/pkg/speech"
)

// export mirrors the on-disk JSON structure.
type export struct {
	Words []exportWord `json:"words"`
}

// exportWord is one recognized word in the export. Start and End are seconds.
type exportWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Reader loads transcript exports from the local filesystem. The ref passed
// to Transcribe is the file path. Reader is stateless and safe for
// concurrent use.
type Reader struct{}

// Compile-time interface check.
var _ speech.Transcriber = (*Reader)(nil)

// New returns a Reader.
func New() *Reader {
	return &Reader{}
}

// Transcribe reads and decodes the export at path ref.
func (r *Reader) Transcribe(ctx context.Context, ref string) (speech.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return speech.Transcript{}, err
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return speech.Transcript{}, fmt.Errorf("jsonfile: read %q: %w", ref, err)
	}
	return Decode(data)
}

// Decode parses a transcript export from raw JSON bytes.
func Decode(data []byte) (speech.Transcript, error) {
	var e export
	if err := json.Unmarshal(data, &e); err != nil {
		return speech.Transcript{}, fmt.Errorf("jsonfile: decode transcript: %w", err)
	}

	t := speech.Transcript{Words: make([]speech.Word, 0, len(e.Words))}
	for _, w := range e.Words {
		t.Words = append(t.Words, speech.Word{
			Text:  w.Word,
			Start: secondsToDuration(w.Start),
			End:   secondsToDuration(w.End),
		})
	}
	return t, nil
}

// secondsToDuration rounds to the nearest nanosecond so that values like
// 0.61 do not truncate to 609999999ns.
func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
