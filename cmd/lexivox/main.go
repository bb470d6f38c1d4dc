// Command lexivox scores pronunciation attempts: it aligns a word-level
// transcript export against the sentence the speaker was asked to say and
// prints the per-word classification and overall score as JSON.
//
// Single attempt:
//
//	lexivox -sentence "the cat sat" -transcript attempt.json
//
// Batch mode scores several transcript exports of the same sentence:
//
//	lexivox -sentence "the cat sat" -transcript a.json -transcript b.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrWong99/lexivox/internal/config"
	"github.com/MrWong99/lexivox/internal/engine"
	"github.com/MrWong99/lexivox/internal/engine/rubric"
	"github.com/MrWong99/lexivox/internal/observe"
	"github.com/MrWong99/lexivox/pkg/speech/jsonfile"
)

func main() {
	os.Exit(run())
}

// transcriptFlags collects repeated -transcript flags.
type transcriptFlags []string

func (t *transcriptFlags) String() string { return fmt.Sprint(*t) }

func (t *transcriptFlags) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "path to the YAML configuration file (optional)")
	sentence := flag.String("sentence", "", "the sentence the speaker was asked to say")
	rubricPath := flag.String("rubric", "", "path to a YAML rubric file (overrides config)")
	speakerID := flag.String("speaker", "", "speaker identity passed to rubric sources")
	var transcripts transcriptFlags
	flag.Var(&transcripts, "transcript", "path to a word-level transcript JSON export (repeatable)")
	flag.Parse()

	if *sentence == "" || len(transcripts) == 0 {
		fmt.Fprintln(os.Stderr, "lexivox: -sentence and at least one -transcript are required")
		flag.Usage()
		return 2
	}

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexivox: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.LogLevel))

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry (optional) ──────────────────────────────────────────────────
	if cfg.Telemetry.Enabled {
		shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
			ServiceName: cfg.Telemetry.ServiceName,
		})
		if err != nil {
			slog.Error("failed to initialise telemetry", "err", err)
			return 1
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Warn("telemetry shutdown error", "err", err)
			}
		}()
	}

	// ── Rubric resolution ─────────────────────────────────────────────────────
	sources := cfg.Rubric.Sources()
	if *rubricPath != "" {
		sources = append([]rubric.Source{&rubric.FileSource{Path: *rubricPath}}, sources...)
	}
	weights := rubric.Resolve(ctx, *speakerID, sources...)

	slog.Debug("rubric resolved",
		"mispronunciation", weights.Mispronunciation,
		"omission", weights.Omission,
		"insertion", weights.Insertion,
		"threshold", weights.Threshold,
	)

	// ── Read transcript exports ───────────────────────────────────────────────
	reader := jsonfile.New()
	attempts := make([]engine.Attempt, 0, len(transcripts))
	for _, path := range transcripts {
		tr, err := reader.Transcribe(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 1
			}
			slog.Error("failed to read transcript", "path", path, "err", err)
			return 1
		}
		attempts = append(attempts, engine.Attempt{
			Target:     *sentence,
			Transcript: tr,
			Weights:    weights,
		})
	}

	// ── Analyse ───────────────────────────────────────────────────────────────
	opts := []engine.Option{}
	if cfg.Telemetry.Enabled {
		opts = append(opts, engine.WithMetrics(observe.DefaultMetrics()))
	}
	if cfg.Engine.BatchLimit > 0 {
		opts = append(opts, engine.WithBatchLimit(cfg.Engine.BatchLimit))
	}
	analyzer := engine.New(opts...)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if len(attempts) == 1 {
		result := analyzer.Analyze(ctx, attempts[0].Target, attempts[0].Transcript, attempts[0].Weights)
		if err := enc.Encode(result); err != nil {
			slog.Error("failed to encode result", "err", err)
			return 1
		}
		return 0
	}

	results := analyzer.AnalyzeBatch(ctx, attempts)
	for i, result := range results {
		fmt.Printf("%s:\n", transcripts[i])
		if err := enc.Encode(result); err != nil {
			slog.Error("failed to encode result", "err", err)
			return 1
		}
	}
	return 0
}

// newLogger builds the process logger at the configured level.
func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
