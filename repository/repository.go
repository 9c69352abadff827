// Package repository persists label mappings.
//
// A Repository saves and loads whole mappings by handle. The blob
// implementation combines a codec.Codec with a storage.Backend; the memory
// implementation keeps mapping objects directly and is meant for tests.
package repository

import (
	"context"
	"fmt"

	"github.com/arloliu/lencoder/codec"
	"github.com/arloliu/lencoder/internal/logging"
	"github.com/arloliu/lencoder/mapping"
	"github.com/arloliu/lencoder/storage"
	"go.uber.org/zap"
)

// Repository saves and loads mappings by handle.
type Repository interface {
	// Save stores m at handle, replacing any existing mapping.
	// Failures wrap errs.ErrPersistence.
	Save(ctx context.Context, handle string, m *mapping.Mapping) error

	// Load returns the mapping at handle. It fails with errs.ErrNotFound if
	// nothing is stored there and errs.ErrCorruptData if the stored content
	// is not a valid mapping. Other read failures wrap errs.ErrPersistence.
	Load(ctx context.Context, handle string) (*mapping.Mapping, error)
}

// Blob is a Repository that serializes mappings into a storage backend.
type Blob struct {
	backend storage.Backend
	codec   *codec.Codec
	logger  *zap.Logger
}

var _ Repository = (*Blob)(nil)

// New creates a blob repository on backend. opts configure how mappings are
// written; any blob written by this module can be read regardless of opts.
func New(backend storage.Backend, opts ...codec.Option) (*Blob, error) {
	c, err := codec.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Blob{
		backend: backend,
		codec:   c,
		logger:  logging.Named("repository"),
	}, nil
}

// Save serializes m and writes it to the backend.
func (r *Blob) Save(ctx context.Context, handle string, m *mapping.Mapping) error {
	data, err := r.codec.Marshal(m)
	if err != nil {
		return storage.PersistenceError(handle, fmt.Errorf("encode mapping: %w", err))
	}

	if err := r.backend.Put(ctx, handle, data); err != nil {
		return err
	}

	r.logger.Debug("saved mapping",
		zap.String("handle", handle),
		zap.Int("entries", m.Len()),
		zap.Int("bytes", len(data)),
		zap.Stringer("compression", r.codec.Compression()))

	return nil
}

// Load reads and decodes the mapping at handle.
func (r *Blob) Load(ctx context.Context, handle string) (*mapping.Mapping, error) {
	data, err := r.backend.Get(ctx, handle)
	if err != nil {
		return nil, err
	}

	m, err := r.codec.Unmarshal(data)
	if err != nil {
		r.logger.Warn("corrupt mapping", zap.String("handle", handle), zap.Error(err))
		return nil, fmt.Errorf("load mapping %q: %w", handle, err)
	}

	return m, nil
}

// Backend returns the underlying storage backend.
func (r *Blob) Backend() storage.Backend {
	return r.backend
}

// Close closes the underlying storage backend.
func (r *Blob) Close() error {
	return r.backend.Close()
}
