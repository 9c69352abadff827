// Package file provides a filesystem storage.Backend where each handle is a
// file path.
//
// Writes go to a temporary file in the target directory which is synced and
// renamed over the target, so readers see either the old or the new blob and
// a failed write leaves the old blob in place.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/lencoder/internal/logging"
	"github.com/arloliu/lencoder/internal/options"
	"github.com/arloliu/lencoder/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// Backend stores blobs as files.
type Backend struct {
	baseDir  string
	fileMode fs.FileMode
	logger   *zap.Logger
}

var _ storage.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option = options.Option[*Backend]

// WithBaseDir resolves relative handles against dir.
func WithBaseDir(dir string) Option {
	return options.NoError(func(b *Backend) {
		b.baseDir = dir
	})
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode fs.FileMode) Option {
	return options.NoError(func(b *Backend) {
		b.fileMode = mode
	})
}

// WithLogger sets the logger. The package logger is used by default.
func WithLogger(l *zap.Logger) Option {
	return options.New(func(b *Backend) error {
		if l == nil {
			return errors.New("nil logger")
		}
		b.logger = l

		return nil
	})
}

// New creates a file backend.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{
		fileMode: defaultFileMode,
		logger:   logging.Named("storage.file"),
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Path returns the file path used for handle.
func (b *Backend) Path(handle string) string {
	if b.baseDir == "" || filepath.IsAbs(handle) {
		return filepath.Clean(handle)
	}

	return filepath.Join(b.baseDir, handle)
}

// Get reads the file at handle.
func (b *Backend) Get(_ context.Context, handle string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(handle))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.NotFound(handle)
		}

		return nil, storage.PersistenceError(handle, fmt.Errorf("read file: %w", err))
	}

	return data, nil
}

// Put atomically replaces the file at handle with data.
func (b *Backend) Put(_ context.Context, handle string, data []byte) error {
	path := b.Path(handle)
	if err := b.writeAtomic(path, data); err != nil {
		b.logger.Warn("failed to write mapping",
			zap.String("path", path),
			zap.Error(err))

		return storage.PersistenceError(handle, err)
	}

	b.logger.Debug("wrote mapping",
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	return nil
}

func (b *Backend) writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.fileMode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Close is a no-op; the backend holds no open files between calls.
func (b *Backend) Close() error {
	return nil
}
