package application

import (
	"context"
	"fmt"

	"chaingen/internal/config"
	"chaingen/internal/domain"
	domainRepo "chaingen/internal/domain/repository"

	"go.uber.org/zap"
)

// Fetcher obtains the raw chain list document and keeps a copy in the document cache.
type Fetcher struct {
	local  domainRepo.SourceRepository
	remote domainRepo.SourceRepository
	cache  domainRepo.DocumentCache
	cfg    config.CacheConfig
	logger *zap.Logger
}

// NewFetcher creates a fetcher. local may be nil; when set it replaces remote entirely.
func NewFetcher(
	local domainRepo.SourceRepository,
	remote domainRepo.SourceRepository,
	cache domainRepo.DocumentCache,
	cfg config.CacheConfig,
	logger *zap.Logger,
) *Fetcher {
	return &Fetcher{
		local:  local,
		remote: remote,
		cache:  cache,
		cfg:    cfg,
		logger: logger.Named("Fetcher"),
	}
}

// Fetch returns the document bytes and the location they came from.
// The remote source is contacted on every call unless a local override,
// offline mode or a fresh cache entry (cache TTL > 0) applies.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	if f.local != nil {
		data, err := f.local.Fetch(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", domain.ErrFetch, err)
		}
		if err := f.store(ctx, data); err != nil {
			return nil, "", err
		}
		return data, f.local.Location(), nil
	}

	if f.cfg.Offline {
		data, found, err := f.cache.Load(ctx, 0)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", domain.ErrFetch, err)
		}
		if !found {
			return nil, "", fmt.Errorf("%w: offline mode and no cached chain list at %s",
				domain.ErrFetch, f.cache.Path(),
			)
		}
		f.logger.Info("Offline mode, using cached chain list", zap.String("path", f.cache.Path()))
		return data, f.cache.Path(), nil
	}

	if ttl := f.cfg.GetTTL(); ttl > 0 {
		data, found, err := f.cache.Load(ctx, ttl)
		if err != nil {
			f.logger.Warn("Cache error when loading chain list", zap.Error(err))
		}
		if found {
			f.logger.Info("Using cached chain list", zap.String("path", f.cache.Path()), zap.Duration("ttl", ttl))
			return data, f.cache.Path(), nil
		}
	}

	if f.remote == nil {
		return nil, "", fmt.Errorf("%w: no chain list source configured", domain.ErrFetch)
	}
	data, err := f.remote.Fetch(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	if err := f.store(ctx, data); err != nil {
		return nil, "", err
	}
	return data, f.remote.Location(), nil
}

func (f *Fetcher) store(ctx context.Context, data []byte) error {
	if err := f.cache.Store(ctx, data); err != nil {
		return fmt.Errorf("%w: failed to cache chain list at %s: %w", domain.ErrFetch, f.cache.Path(), err)
	}
	return nil
}
