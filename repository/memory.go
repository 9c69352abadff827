package repository

import (
	"context"
	"sync"

	"github.com/arloliu/lencoder/mapping"
	"github.com/arloliu/lencoder/storage"
)

// Memory keeps cloned mapping objects in a map without serializing them.
type Memory struct {
	mu       sync.RWMutex
	mappings map[string]*mapping.Mapping
	saves    int
}

var _ Repository = (*Memory)(nil)

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{mappings: make(map[string]*mapping.Mapping)}
}

// Save stores a clone of m.
func (r *Memory) Save(_ context.Context, handle string, m *mapping.Mapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mappings[handle] = m.Clone()
	r.saves++

	return nil
}

// Load returns a clone of the mapping at handle.
func (r *Memory) Load(_ context.Context, handle string) (*mapping.Mapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mappings[handle]
	if !ok {
		return nil, storage.NotFound(handle)
	}

	return m.Clone(), nil
}

// Saves returns how many times Save was called.
func (r *Memory) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.saves
}
