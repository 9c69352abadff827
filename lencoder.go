// Package lencoder assigns stable integer labels to categorical values and
// keeps the assignment on disk so training and inference runs encode a column
// the same way.
//
// # Core Features
//
//   - Fit a column once, labels 0..K-1 for its K distinct values
//   - Update with newly observed values; existing labels never change and
//     new values fill the smallest free labels first
//   - Strict Transform and InverseTransform, no fallback labels
//   - Typed categories: string, int64, float64 and bool keys keep their kind
//     through persistence
//   - Compact binary format with optional Zstd, S2 or LZ4 compression and an
//     xxHash64 checksum
//   - File, SQLite, Redis and in-memory storage backends
//
// # Basic Usage
//
//	store, _ := lencoder.NewFileStore("/var/lib/encoders")
//
//	// First training run
//	_ = store.Fit(ctx, lencoder.Strings("red", "green", "red"), "color.lenc")
//
//	// Later run sees a new color
//	_ = store.Update(ctx, lencoder.Strings("green", "blue"), "color.lenc")
//
//	labels, _ := store.Transform(ctx, lencoder.Strings("blue", "red"), "color.lenc")
//	values, _ := store.InverseTransform(ctx, labels, "color.lenc")
//
// # Package Structure
//
// This package only wires the common configurations together. The operations
// live in package labelstore, the data model in packages mapping and category,
// and persistence in packages repository, codec and storage.
package lencoder

import (
	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/codec"
	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/internal/logging"
	"github.com/arloliu/lencoder/labelstore"
	"github.com/arloliu/lencoder/repository"
	"github.com/arloliu/lencoder/storage"
	"github.com/arloliu/lencoder/storage/file"
	"go.uber.org/zap"
)

// DefaultCompression is the payload compression used by the constructors of
// this package.
const DefaultCompression = format.CompressionZstd

// NewStore creates a label store persisting to backend with Zstd compressed
// blobs.
func NewStore(backend storage.Backend, opts ...labelstore.Option) (*labelstore.Store, error) {
	repo, err := repository.New(backend, codec.WithCompression(DefaultCompression))
	if err != nil {
		return nil, err
	}

	return labelstore.New(repo, opts...)
}

// NewFileStore creates a label store whose handles are file paths relative
// to baseDir. Absolute handles are used as is; an empty baseDir resolves
// relative handles against the working directory.
func NewFileStore(baseDir string, opts ...labelstore.Option) (*labelstore.Store, error) {
	backend, err := file.New(file.WithBaseDir(baseDir))
	if err != nil {
		return nil, err
	}

	return NewStore(backend, opts...)
}

// NewMemoryStore creates a label store that keeps mappings in process memory.
func NewMemoryStore(opts ...labelstore.Option) (*labelstore.Store, error) {
	return labelstore.New(repository.NewMemory(), opts...)
}

// SetLogger sets the logger used by every lencoder package that was not
// given an explicit one. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	logging.SetLogger(l)
}

// Strings converts a string column into category values.
func Strings(data ...string) []category.Value {
	return category.Strings(data...)
}

// Ints converts an integer column into category values.
func Ints(data ...int64) []category.Value {
	return category.Ints(data...)
}

// Floats converts a float column into category values.
func Floats(data ...float64) []category.Value {
	return category.Floats(data...)
}

// Bools converts a boolean column into category values.
func Bools(data ...bool) []category.Value {
	return category.Bools(data...)
}
