// Package storage defines the byte-blob backends a label mapping is
// persisted to.
//
// A backend stores opaque blobs addressed by a handle string. Its meaning
// depends on the backend: a file path, a Redis key suffix, a table row key.
// Backends know nothing about mappings; serialization lives in package codec.
package storage

import (
	"context"
	"fmt"

	"github.com/arloliu/lencoder/errs"
)

// Backend stores and retrieves blobs by handle.
type Backend interface {
	// Get returns the blob stored at handle.
	// It returns an error wrapping errs.ErrNotFound if nothing is stored there;
	// other failures wrap errs.ErrPersistence.
	Get(ctx context.Context, handle string) ([]byte, error)

	// Put stores data at handle, replacing any existing blob. A failed Put
	// must leave the previous blob intact. Failures wrap errs.ErrPersistence.
	Put(ctx context.Context, handle string, data []byte) error

	// Close releases resources held by the backend.
	Close() error
}

// NotFound returns an error wrapping errs.ErrNotFound for handle.
func NotFound(handle string) error {
	return fmt.Errorf("%w: %q", errs.ErrNotFound, handle)
}

// PersistenceError wraps err with errs.ErrPersistence for handle.
func PersistenceError(handle string, err error) error {
	return fmt.Errorf("%w: %q: %w", errs.ErrPersistence, handle, err)
}
