// Transcriber is the contract between Lexivox and an external speech-to-text
// collaborator. Implementations wrap whatever actually produced the words —
// a local model run, a cloud API, or a previously saved export — and hand the
// engine a fully-resolved [Transcript].
//
// The engine itself never calls a Transcriber; the caller resolves the
// transcript first and passes the value in. Keeping the interface here lets
// orchestration code and tests swap transcribers without touching the engine.
package speech

import "context"

// Transcriber produces a word-level transcript for a named recording.
//
// Implementations must be safe for concurrent use. The ref argument
// identifies the recording in implementation-specific terms (a file path for
// [jsonfile.Reader], an opaque ID for remote services).
//
// Transcriber failures are the caller's concern: on error the analysis is
// aborted before the engine runs, never fed a partial transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, ref string) (Transcript, error)
}
