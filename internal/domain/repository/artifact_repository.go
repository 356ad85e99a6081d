package repository

import "context"

// ArtifactWriter persists generated files.
type ArtifactWriter interface {
	// Write stores data at path atomically and reports whether the file changed.
	Write(ctx context.Context, path string, data []byte) (bool, error)
}
