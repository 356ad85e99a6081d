package repository

import (
	"context"
	"time"
)

// DocumentCache keeps the last retrieved chain list document at a fixed path.
type DocumentCache interface {
	// Load returns the cached document. A maxAge above zero treats older documents as missing.
	Load(ctx context.Context, maxAge time.Duration) ([]byte, bool, error)

	// Store replaces the cached document, leaving the file untouched when the content is unchanged.
	Store(ctx context.Context, data []byte) error

	// Path returns the cache file location.
	Path() string
}
