// Package errs defines the sentinel errors returned by lencoder packages.
//
// Callers should test for these with errors.Is. Every error returned by the
// label store wraps one of the top-level sentinels below, except invalid
// input such as the zero category.Value, which is reported as
// ErrInvalidCategory.
package errs

import "errors"

// Label store errors.
var (
	// ErrNotFound is returned when no mapping exists at the given handle.
	ErrNotFound = errors.New("mapping not found")

	// ErrCorruptData is returned when a persisted mapping cannot be decoded
	// into a valid category to label mapping.
	ErrCorruptData = errors.New("corrupt mapping data")

	// ErrUnknownCategory is returned by transform when an input value is not
	// a key of the mapping.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownLabel is returned by inverse transform when an input label
	// was never assigned.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrPersistence is returned when a backend fails to read or write a
	// mapping, or when a mapping cannot be encoded for writing.
	ErrPersistence = errors.New("failed to persist mapping")
)

// Mapping errors.
var (
	ErrDuplicateCategory = errors.New("category already has a label")
	ErrDuplicateLabel    = errors.New("label already assigned")
	ErrInvalidLabel      = errors.New("label must be non-negative")
	ErrInvalidCategory   = errors.New("invalid category kind")
)

// Blob format errors. Decoders return these wrapped in ErrCorruptData.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidPayloadSize = errors.New("payload size does not match header")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrInvalidRecord      = errors.New("invalid mapping record")
	ErrEntryCountMismatch = errors.New("entry count does not match header")
	ErrTooManyEntries     = errors.New("too many mapping entries")
)
