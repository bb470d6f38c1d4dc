// Package mock provides an in-memory [speech.Transcriber] for tests.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrWong99/lexivox/pkg/speech"
)

// Transcriber is a test double that returns canned transcripts by ref.
// Safe for concurrent use.
type Transcriber struct {
	mu          sync.Mutex
	transcripts map[string]speech.Transcript
	err         error
	calls       []string
}

// Compile-time interface check.
var _ speech.Transcriber = (*Transcriber)(nil)

// New creates an empty mock transcriber. Register transcripts with [Transcriber.Set].
func New() *Transcriber {
	return &Transcriber{transcripts: map[string]speech.Transcript{}}
}

// Set registers the transcript returned for ref.
func (m *Transcriber) Set(ref string, t speech.Transcript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts[ref] = t
}

// Fail makes every subsequent Transcribe call return err.
func (m *Transcriber) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Transcribe returns the canned transcript for ref, or an error if none is
// registered or a failure was injected via [Transcriber.Fail].
func (m *Transcriber) Transcribe(_ context.Context, ref string) (speech.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ref)
	if m.err != nil {
		return speech.Transcript{}, m.err
	}
	t, ok := m.transcripts[ref]
	if !ok {
		return speech.Transcript{}, fmt.Errorf("mock: no transcript registered for %q", ref)
	}
	return t, nil
}

// Calls returns the refs passed to Transcribe so far, in call order.
func (m *Transcriber) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
