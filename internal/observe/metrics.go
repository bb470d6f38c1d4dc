// Package observe provides application-wide observability primitives for
// Lexivox: OpenTelemetry metrics, tracing helpers, and structured logging.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped the usual way. A package-level default [Metrics] instance
// ([DefaultMetrics]) is provided for convenience; tests should use
// [NewMetrics] with a custom [metric.MeterProvider] to avoid cross-test
// pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Lexivox metrics.
const meterName = "github.com/MrWong99/lexivox"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// AnalysisDuration tracks end-to-end analysis latency (tokenize + align
	// + score) per attempt.
	AnalysisDuration metric.Float64Histogram

	// ScoreDistribution tracks the overall scores produced, bucketed across
	// the 0–100 range.
	ScoreDistribution metric.Float64Histogram

	// Analyses counts completed analyses. Use with attribute:
	//   attribute.String("mode", "single"|"batch")
	Analyses metric.Int64Counter

	// WordErrors counts classified word errors. Use with attribute:
	//   attribute.String("type", "mispronunciation"|"omission"|"insertion")
	WordErrors metric.Int64Counter
}

// analysisBuckets defines histogram bucket boundaries (in seconds) for
// analysis latency — the engine is pure computation, so buckets sit well
// below typical request-latency ranges.
var analysisBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// scoreBuckets covers the 0–100 score range in tens.
var scoreBuckets = []float64{
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.AnalysisDuration, err = m.Float64Histogram("lexivox.analysis.duration",
		metric.WithDescription("Latency of a full pronunciation analysis."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(analysisBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ScoreDistribution, err = m.Float64Histogram("lexivox.analysis.score",
		metric.WithDescription("Distribution of overall scores."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Analyses, err = m.Int64Counter("lexivox.analysis.count",
		metric.WithDescription("Total completed analyses by mode."),
	); err != nil {
		return nil, err
	}
	if met.WordErrors, err = m.Int64Counter("lexivox.word.errors",
		metric.WithDescription("Total classified word errors by type."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordAnalysis records one completed analysis: its latency, the score it
// produced, and the mode attribute on the analysis counter.
func (m *Metrics) RecordAnalysis(ctx context.Context, mode string, seconds float64, score int) {
	m.AnalysisDuration.Record(ctx, seconds)
	m.ScoreDistribution.Record(ctx, float64(score))
	m.Analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
}

// RecordWordError increments the word-error counter for the given error type.
func (m *Metrics) RecordWordError(ctx context.Context, errorType string) {
	m.WordErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("type", errorType)))
}
