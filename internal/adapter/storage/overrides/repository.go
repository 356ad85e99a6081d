package overrides

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"chaingen/internal/domain/entity"
	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/pkg/apperrors"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Compile-time check
var _ domainRepo.OverrideRepository = (*Repository)(nil)

//go:embed defaults.yaml
var defaultOverrides []byte

// Repository loads the built-in overrides and layers an optional user file on top.
type Repository struct {
	path   string
	logger *zap.Logger
}

// NewRepository creates an override repository. An empty path uses the built-in defaults only.
func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger.Named("OverrideStorage"),
	}
}

// Load returns the merged overrides.
func (r *Repository) Load(_ context.Context) (entity.Overrides, error) {
	defaults, err := Decode(defaultOverrides)
	if err != nil {
		return entity.Overrides{}, fmt.Errorf("%w: built-in overrides: %v", apperrors.ErrInternal, err)
	}
	if r.path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Overrides{}, fmt.Errorf("%w: overrides file %s", apperrors.ErrNotFound, r.path)
		}
		return entity.Overrides{}, fmt.Errorf("%w: failed to read overrides %s: %v", apperrors.ErrInternal, r.path, err)
	}
	custom, err := Decode(data)
	if err != nil {
		return entity.Overrides{}, fmt.Errorf("%w: overrides %s: %v", apperrors.ErrInvalidInput, r.path, err)
	}

	r.logger.Info("Loaded chain overrides", zap.String("path", r.path), zap.Int("count", len(custom.Chains)))
	return defaults.Merge(custom), nil
}

// Decode parses an overrides document. Unknown keys are rejected.
func Decode(data []byte) (entity.Overrides, error) {
	var out entity.Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return entity.Overrides{}, err
	}
	for id, ov := range out.Chains {
		if ov.BlockTime < 0 {
			return entity.Overrides{}, fmt.Errorf("chain %d: negative blockTime %v", id, ov.BlockTime)
		}
	}
	if out.Chains == nil {
		out.Chains = map[uint64]entity.ChainOverride{}
	}
	return out, nil
}
