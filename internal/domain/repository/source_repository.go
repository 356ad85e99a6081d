package repository

import "context"

// SourceRepository retrieves the raw chain list document.
type SourceRepository interface {
	// Fetch returns the document bytes exactly as the source provides them.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes the source in log and error messages.
	Location() string
}
