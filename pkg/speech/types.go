// Package speech defines the transcript types shared between the Lexivox
// analysis engine and external speech-to-text collaborators.
//
// A Transcript is the already-resolved output of a transcriber: an ordered
// sequence of recognized words with timing offsets. Lexivox never invokes a
// speech model itself — transcription happens outside this module and the
// result is handed in as a value.
package speech

import (
	"strings"
	"time"
)

// Word is a single recognized word with its timing offsets relative to the
// start of the recording.
type Word struct {
	// Text is the recognized word as emitted by the transcriber.
	Text string `json:"text"`

	// Start marks when the word began, relative to recording start.
	Start time.Duration `json:"start"`

	// End marks when the word ended, relative to recording start.
	End time.Duration `json:"end"`
}

// Transcript is an ordered sequence of recognized words. Order reflects time
// order from the transcriber; it is not assumed to line up one-to-one with
// the sentence the speaker was asked to say.
type Transcript struct {
	// Words holds the recognized words in time order. May be empty when the
	// transcriber heard nothing.
	Words []Word `json:"words"`
}

// Text joins the recognized words into a single space-separated string.
// Returns the empty string for an empty transcript.
func (t Transcript) Text() string {
	if len(t.Words) == 0 {
		return ""
	}
	parts := make([]string, len(t.Words))
	for i, w := range t.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// FromTexts builds a Transcript from bare word strings with zero timing.
// Useful in tests and for transcribers that do not report word timing.
func FromTexts(words ...string) Transcript {
	t := Transcript{Words: make([]Word, len(words))}
	for i, w := range words {
		t.Words[i] = Word{Text: w}
	}
	return t
}
