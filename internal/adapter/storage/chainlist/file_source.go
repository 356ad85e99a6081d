package chainlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.SourceRepository = (*FileSource)(nil)

// FileSource implements SourceRepository by reading a local chain list file.
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a source backed by the file at path.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger.Named("ChainlistFileSource"),
	}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: chain list file %s: %v", apperrors.ErrNotFound, s.path, err)
		}
		return nil, fmt.Errorf("%w: failed to read chain list file %s: %v", apperrors.ErrInternal, s.path, err)
	}
	s.logger.Info("Read chain list from local file", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return data, nil
}
