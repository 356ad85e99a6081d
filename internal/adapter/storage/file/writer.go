package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ArtifactWriter = (*Writer)(nil)

// Writer implements ArtifactWriter on the local filesystem.
type Writer struct {
	logger *zap.Logger
}

// NewWriter creates a filesystem artifact writer.
func NewWriter(logger *zap.Logger) *Writer {
	return &Writer{logger: logger.Named("FileWriter")}
}

// Write replaces path with data through a temporary file in the same directory.
// An existing file with identical content is left alone.
func (w *Writer) Write(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, data):
		w.logger.Debug("File unchanged, skipping write", zap.String("path", path))
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("%w: failed to read %s: %v", apperrors.ErrInternal, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: failed to create directory %s: %v", apperrors.ErrInternal, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("%w: failed to create temporary file in %s: %v", apperrors.ErrInternal, dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrInternal, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("%w: failed to close %s: %v", apperrors.ErrInternal, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return false, fmt.Errorf("%w: failed to set permissions on %s: %v", apperrors.ErrInternal, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, fmt.Errorf("%w: failed to move %s into place: %v", apperrors.ErrInternal, path, err)
	}

	w.logger.Debug("File written", zap.String("path", path), zap.Int("bytes", len(data)))
	return true, nil
}
