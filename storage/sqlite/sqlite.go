// Package sqlite provides a storage.Backend keeping every mapping as a row
// of a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arloliu/lencoder/storage"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS mappings (
	handle     TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Backend implements storage.Backend on a SQLite database.
type Backend struct {
	db *sql.DB
}

var _ storage.Backend = (*Backend)(nil)

// Open opens or creates the database at path and ensures the schema exists.
// Use ":memory:" for a private in-memory database.
func Open(path string) (*Backend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database lives per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Backend{db: db}, nil
}

// Get returns the blob stored for handle.
func (b *Backend) Get(ctx context.Context, handle string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx, `SELECT data FROM mappings WHERE handle = ?`, handle).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.NotFound(handle)
		}

		return nil, storage.PersistenceError(handle, fmt.Errorf("query mapping: %w", err))
	}

	return data, nil
}

// Put inserts or replaces the blob for handle in one statement.
func (b *Backend) Put(ctx context.Context, handle string, data []byte) error {
	if data == nil {
		data = []byte{}
	}

	_, err := b.db.ExecContext(ctx, `
		INSERT INTO mappings (handle, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(handle) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		handle, data, time.Now().UnixMicro())
	if err != nil {
		return storage.PersistenceError(handle, err)
	}

	return nil
}

// UpdatedAt returns when the blob for handle was last written.
func (b *Backend) UpdatedAt(ctx context.Context, handle string) (time.Time, error) {
	var micros int64
	err := b.db.QueryRowContext(ctx, `SELECT updated_at FROM mappings WHERE handle = ?`, handle).Scan(&micros)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.NotFound(handle)
		}

		return time.Time{}, fmt.Errorf("query mapping %q: %w", handle, err)
	}

	return time.UnixMicro(micros), nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}
