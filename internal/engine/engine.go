// Package engine implements the Lexivox pronunciation analysis engine: given
// the sentence a speaker was asked to say and the word-level transcript an
// external transcriber produced, it classifies every word and scores the
// attempt under a rubric.
//
// The engine is a pure, synchronous computation. It owns no shared state and
// performs no I/O, so any number of analyses may run concurrently; each call
// produces a fresh [AnalysisResult] that belongs entirely to the caller.
// Collaborator failures (transcriber, rubric store) are resolved by the
// caller before the engine is invoked — the engine only ever sees
// already-resolved values and never fails on well-typed input.
package engine

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/lexivox/internal/engine/align"
	"github.com/MrWong99/lexivox/internal/engine/rubric"
	"github.com/MrWong99/lexivox/internal/observe"
	"github.com/MrWong99/lexivox/pkg/speech"
)

// AnalysisResult is the terminal output of one analysis. Ownership passes
// entirely to the caller; the engine keeps no reference.
type AnalysisResult struct {
	// OverallScore is the rubric score in [0, 100].
	OverallScore int `json:"overallScore"`

	// Words holds one entry per target word (in sentence order) followed by
	// one entry per unmatched transcript word (in transcript order).
	Words []align.WordResult `json:"words"`

	// TranscribedText is the transcript joined back into a sentence, for
	// display next to the target sentence.
	TranscribedText string `json:"transcribedText"`
}

// Option is a functional option for configuring an [Analyzer].
type Option func(*Analyzer)

// WithMetrics attaches a metrics instance. When nil (the default), no
// metrics are recorded.
func WithMetrics(m *observe.Metrics) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// WithBatchLimit caps how many analyses [Analyzer.AnalyzeBatch] runs in
// parallel. Values below 1 are ignored. Default: 4.
func WithBatchLimit(n int) Option {
	return func(a *Analyzer) {
		if n >= 1 {
			a.batchLimit = n
		}
	}
}

// Analyzer runs pronunciation analyses. Safe for concurrent use — it is
// read-only after construction.
type Analyzer struct {
	metrics    *observe.Metrics
	batchLimit int
}

// defaultBatchLimit bounds parallel batch analyses.
const defaultBatchLimit = 4

// New returns an [Analyzer] configured with the supplied options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{batchLimit: defaultBatchLimit}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze classifies every word of the attempt and scores it under weights.
//
// targetSentence is tokenised by lowercasing, splitting on whitespace, and
// dropping empty tokens. An empty sentence after tokenisation is a
// degenerate-but-valid case: every transcript word is flagged as an
// insertion and the score is 0.
//
// The ctx is used only for tracing and metrics — the computation itself
// runs to completion and cannot block.
func (a *Analyzer) Analyze(ctx context.Context, targetSentence string, transcript speech.Transcript, weights rubric.Weights) AnalysisResult {
	ctx, span := observe.StartSpan(ctx, "engine.Analyze")
	defer span.End()
	start := time.Now()

	targets := Tokenize(targetSentence)
	words := align.Words(targets, transcript.Words, weights.Threshold)
	score := rubric.Score(words, weights)

	result := AnalysisResult{
		OverallScore:    score,
		Words:           words,
		TranscribedText: transcript.Text(),
	}

	if a.metrics != nil {
		a.metrics.RecordAnalysis(ctx, "single", time.Since(start).Seconds(), score)
		for _, w := range words {
			if w.Error != align.ErrorNone {
				a.metrics.RecordWordError(ctx, string(w.Error))
			}
		}
	}

	observe.Logger(ctx).Debug("analysis complete",
		"target_words", len(targets),
		"transcript_words", len(transcript.Words),
		"score", score,
	)

	return result
}

// Attempt is one (target sentence, transcript, rubric) triple for batch
// analysis.
type Attempt struct {
	// Target is the sentence the speaker was asked to say.
	Target string

	// Transcript is the transcriber's word-level output for the attempt.
	Transcript speech.Transcript

	// Weights is the fully-resolved rubric for this attempt.
	Weights rubric.Weights
}

// AnalyzeBatch analyses every attempt, running up to the configured batch
// limit in parallel. Results are returned in attempt order. Analyses are
// independent (the engine is pure), so parallelism needs no coordination
// beyond the bound itself.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, attempts []Attempt) []AnalysisResult {
	results := make([]AnalysisResult, len(attempts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.batchLimit)
	for i, att := range attempts {
		g.Go(func() error {
			results[i] = a.Analyze(ctx, att.Target, att.Transcript, att.Weights)
			return nil
		})
	}
	// Analyses never fail; Wait only synchronises completion.
	_ = g.Wait()

	return results
}

// Tokenize splits a target sentence into the lowercase word tokens the
// aligner consumes: lowercased, whitespace-separated, empties dropped.
func Tokenize(sentence string) []string {
	return strings.Fields(strings.ToLower(sentence))
}
