// Package align matches the words a speaker was asked to say against the
// words a transcriber heard, classifying each as correct, mispronounced,
// omitted, or inserted.
//
// The matcher is a two-phase greedy scheme, not a globally optimal sequence
// alignment:
//
//  1. Exact phase: for each target word in sentence order, scan the
//     not-yet-consumed transcript words in transcript order and take the
//     first case-insensitive exact match.
//  2. Fuzzy phase: when no exact match exists, take the unconsumed transcript
//     word with the smallest Levenshtein distance that is positive and
//     within the configured threshold. Distances are compared strictly-less,
//     so on ties the first-scanned candidate wins.
//
// Target words that survive both phases are omissions; transcript words
// never consumed by either phase become insertions, appended in transcript
// order. Tie-break order is part of the package contract — downstream scores
// depend on it, so changing the matching strategy silently changes scores.
package align

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/lexivox/pkg/speech"
)

// ErrorType classifies how a word relates to the target sentence.
type ErrorType string

const (
	// ErrorNone marks a target word the speaker got right.
	ErrorNone ErrorType = "none"

	// ErrorMispronunciation marks a target word matched only fuzzily — the
	// transcriber heard something close but not identical.
	ErrorMispronunciation ErrorType = "mispronunciation"

	// ErrorOmission marks a target word with no matching transcript word.
	ErrorOmission ErrorType = "omission"

	// ErrorInsertion marks a transcript word not matched to any target word.
	ErrorInsertion ErrorType = "insertion"
)

// WordResult is the classification of a single word. For target words, Word
// is the target token; for insertions it is the transcript token.
type WordResult struct {
	// Word is the token this result describes.
	Word string `json:"word"`

	// Error is the classification.
	Error ErrorType `json:"error"`

	// TranscribedAs holds the transcript word a mispronounced target was
	// matched against. Empty for every other classification.
	TranscribedAs string `json:"transcribedAs,omitempty"`

	// PhoneticMatch is set on mispronunciations whose Double Metaphone codes
	// overlap with the matched transcript word — a hint that the mismatch is
	// likely a homophone or transcription artifact rather than a real
	// pronunciation error. Diagnostic only; scoring ignores it.
	PhoneticMatch bool `json:"phoneticMatch,omitempty"`
}

// Words aligns targetWords against transcript and classifies every word.
//
// targetWords are expected to be lowercase whitespace-free tokens (see the
// engine's tokenizer); transcript may be empty. threshold bounds how many
// character edits still count as a mispronunciation rather than a miss: a
// distance exactly equal to threshold is accepted, threshold+1 is not.
//
// The returned slice contains one entry per target word (in sentence order)
// followed by one entry per unmatched transcript word (in transcript order).
// Words is deterministic, never fails on well-typed input, and does not
// mutate its arguments. An empty target list yields an all-insertion result.
func Words(targetWords []string, transcript []speech.Word, threshold int) []WordResult {
	consumed := make([]bool, len(transcript))
	results := make([]WordResult, 0, len(targetWords)+len(transcript))

	for _, target := range targetWords {
		if idx, ok := exactMatch(target, transcript, consumed); ok {
			consumed[idx] = true
			results = append(results, WordResult{Word: target, Error: ErrorNone})
			continue
		}

		if idx, ok := fuzzyMatch(target, transcript, consumed, threshold); ok {
			consumed[idx] = true
			heard := transcript[idx].Text
			results = append(results, WordResult{
				Word:          target,
				Error:         ErrorMispronunciation,
				TranscribedAs: heard,
				PhoneticMatch: phoneticOverlap(target, heard),
			})
			continue
		}

		results = append(results, WordResult{Word: target, Error: ErrorOmission})
	}

	for i, w := range transcript {
		if !consumed[i] {
			results = append(results, WordResult{Word: w.Text, Error: ErrorInsertion})
		}
	}

	return results
}

// exactMatch returns the index of the first unconsumed transcript word whose
// lowercased text equals target.
func exactMatch(target string, transcript []speech.Word, consumed []bool) (int, bool) {
	for i, w := range transcript {
		if consumed[i] {
			continue
		}
		if strings.ToLower(w.Text) == target {
			return i, true
		}
	}
	return 0, false
}

// fuzzyMatch returns the index of the unconsumed transcript word with the
// smallest edit distance to target, provided that distance is positive and
// at most threshold. The comparison is strictly-less, so the first-scanned
// candidate at the minimal distance is kept.
func fuzzyMatch(target string, transcript []speech.Word, consumed []bool, threshold int) (int, bool) {
	best := -1
	bestDist := 0

	for i, w := range transcript {
		if consumed[i] {
			continue
		}
		d := matchr.Levenshtein(target, strings.ToLower(w.Text))
		if d <= 0 || d > threshold {
			continue
		}
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}

// phoneticOverlap reports whether the Double Metaphone codes of the two
// words share at least one entry.
func phoneticOverlap(a, b string) bool {
	ap, as := matchr.DoubleMetaphone(strings.ToLower(a))
	bp, bs := matchr.DoubleMetaphone(strings.ToLower(b))
	for _, x := range []string{ap, as} {
		if x == "" {
			continue
		}
		if x == bp || (bs != "" && x == bs) {
			return true
		}
	}
	return false
}
