package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"chaingen/internal/config"
	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.DocumentCache = (*CacheRepository)(nil)

// CacheRepository implements DocumentCache as a single file at a fixed path.
type CacheRepository struct {
	path   string
	writer *Writer
	now    func() time.Time
	logger *zap.Logger
}

// NewCacheRepository creates a cache stored at cfg.CachePath().
func NewCacheRepository(cfg config.CacheConfig, logger *zap.Logger) *CacheRepository {
	return &CacheRepository{
		path:   cfg.CachePath(),
		writer: NewWriter(logger),
		now:    time.Now,
		logger: logger.Named("FileCacheStorage"),
	}
}

// Path returns the cache file location.
func (r *CacheRepository) Path() string {
	return r.path
}

// Load returns the cached document, treating it as missing when maxAge > 0 and the file is older.
func (r *CacheRepository) Load(_ context.Context, maxAge time.Duration) ([]byte, bool, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("Cache miss", zap.String("path", r.path))
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to stat cache %s: %v", apperrors.ErrInternal, r.path, err)
	}

	if maxAge > 0 {
		age := r.now().Sub(info.ModTime())
		if age > maxAge {
			r.logger.Debug("Cached document is stale",
				zap.String("path", r.path), zap.Duration("age", age), zap.Duration("maxAge", maxAge),
			)
			return nil, false, nil
		}
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to read cache %s: %v", apperrors.ErrInternal, r.path, err)
	}
	r.logger.Debug("Cache hit", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return data, true, nil
}

// Store writes data to the cache file unless it already holds the same bytes.
func (r *CacheRepository) Store(ctx context.Context, data []byte) error {
	changed, err := r.writer.Write(ctx, r.path, data)
	if err != nil {
		return err
	}
	r.logger.Debug("Cache stored", zap.String("path", r.path), zap.Bool("changed", changed))
	return nil
}
