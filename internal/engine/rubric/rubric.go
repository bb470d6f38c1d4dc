// Package rubric defines the configurable scoring rubric for pronunciation
// attempts and the scorer that turns classified words into a single 0–100
// score.
//
// Weights are penalty severities: a higher weight makes that error type cost
// more. A mispronunciation weight of 100 scores the word like a full miss; a
// weight of 0 scores it as if correct. Insertions are a flat deduction since
// they have no corresponding "possible point" slot.
//
// Rubric values come from an external collaborator (a per-speaker document
// store, a config file) behind the [Source] interface; [Resolve] walks
// sources in order and falls back to [DefaultWeights] when none can supply
// a valid rubric.
package rubric

import (
	"errors"
	"fmt"
)

// Weights is an immutable rubric: per-error-type penalty severities plus the
// edit-distance threshold separating a mispronunciation from an omission.
type Weights struct {
	// Mispronunciation is the penalty severity for fuzzy-matched words,
	// in [0, 100].
	Mispronunciation int `yaml:"mispronunciation" json:"mispronunciation"`

	// Omission is the penalty severity for words never heard, in [0, 100].
	Omission int `yaml:"omission" json:"omission"`

	// Insertion is the flat deduction for each extra word, in [0, 100].
	Insertion int `yaml:"insertion" json:"insertion"`

	// Threshold is the maximum Levenshtein distance at which a transcript
	// word still counts as a mispronunciation of a target word. Must be ≥ 0.
	Threshold int `yaml:"threshold" json:"threshold"`
}

// DefaultWeights returns the rubric used when no collaborator supplies one.
func DefaultWeights() Weights {
	return Weights{
		Mispronunciation: 50,
		Omission:         70,
		Insertion:        30,
		Threshold:        3,
	}
}

// Validate checks that every field is within its documented range. It
// returns a joined error describing every violation found, or nil.
func (w Weights) Validate() error {
	var errs []error

	if w.Mispronunciation < 0 || w.Mispronunciation > 100 {
		errs = append(errs, fmt.Errorf("rubric: mispronunciation weight %d is out of range [0, 100]", w.Mispronunciation))
	}
	if w.Omission < 0 || w.Omission > 100 {
		errs = append(errs, fmt.Errorf("rubric: omission weight %d is out of range [0, 100]", w.Omission))
	}
	if w.Insertion < 0 || w.Insertion > 100 {
		errs = append(errs, fmt.Errorf("rubric: insertion weight %d is out of range [0, 100]", w.Insertion))
	}
	if w.Threshold < 0 {
		errs = append(errs, fmt.Errorf("rubric: threshold %d must not be negative", w.Threshold))
	}

	return errors.Join(errs...)
}
