package rubric

import (
	"math"

	"github.com/MrWong99/lexivox/internal/engine/align"
)

// Score converts classified words into a single 0–100 score under w.
//
// Every non-insertion result contributes one 100-point slot to the possible
// total. Correct words earn the full slot; mispronunciations and omissions
// earn the slot scaled by how forgiving the rubric is (100 minus the
// weight); insertions subtract their weight from the numerator without
// adding a slot. The ratio is rounded half-away-from-zero and clamped to
// [0, 100], so a transcript full of insertions bottoms out at 0 rather than
// going negative.
//
// Score does not validate w — callers are expected to have resolved the
// rubric through [Resolve] or checked it with [Weights.Validate]. An empty
// or all-insertion result slice yields 0.
func Score(results []align.WordResult, w Weights) int {
	totalPossible := 0.0
	actual := 0.0

	for _, r := range results {
		switch r.Error {
		case align.ErrorNone:
			totalPossible += 100
			actual += 100
		case align.ErrorMispronunciation:
			totalPossible += 100
			actual += 100 * float64(100-w.Mispronunciation) / 100
		case align.ErrorOmission:
			totalPossible += 100
			actual += 100 * float64(100-w.Omission) / 100
		case align.ErrorInsertion:
			actual -= float64(w.Insertion)
		}
	}

	if totalPossible == 0 {
		return 0
	}

	score := actual / totalPossible * 100
	return int(math.Round(math.Min(100, math.Max(0, score))))
}
