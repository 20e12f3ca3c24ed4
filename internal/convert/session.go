package convert

import "context"

// Session is one exclusively-owned, non-interactive instance of the external
// word-processing application, scoped to a single conversion. Implementations
// must never attach to an instance the operator already has open.
//
// Call order is fixed: Open, ExportPDF, Close, then Quit. Quit must be safe
// to call after any prefix of that sequence, including immediately after
// launch, and must tear the instance down best-effort.
type Session interface {
	// Open loads the document read-only, silently accepting any
	// format-conversion prompts instead of surfacing them.
	Open(ctx context.Context, path string) error

	// ExportPDF saves the opened document as a PDF at path, passing the
	// optimization hint to the export filter.
	ExportPDF(ctx context.Context, path string, hint ExportHint) error

	// Close discards the opened document without saving changes to the
	// original.
	Close() error

	// Quit terminates the application instance and releases its resources.
	Quit() error
}

// Launcher produces fresh automation sessions. The production implementation
// starts a headless office binary; tests substitute fakes.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}
