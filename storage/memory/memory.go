// Package memory provides an in-process storage.Backend.
package memory

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/arloliu/lencoder/storage"
)

var errClosed = errors.New("memory backend is closed")

// Backend keeps blobs in a map. Stored blobs are copied on the way in and
// out, so callers may reuse their buffers.
type Backend struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
}

var _ storage.Backend = (*Backend)(nil)

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob at handle.
func (b *Backend) Get(_ context.Context, handle string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.blobs[handle]
	if !ok {
		return nil, storage.NotFound(handle)
	}

	return bytes.Clone(data), nil
}

// Put stores a copy of data at handle.
func (b *Backend) Put(_ context.Context, handle string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return storage.PersistenceError(handle, errClosed)
	}
	b.blobs[handle] = bytes.Clone(data)

	return nil
}

// Len returns the number of stored blobs.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.blobs)
}

// Close rejects further writes. Stored blobs remain readable.
func (b *Backend) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	return nil
}
