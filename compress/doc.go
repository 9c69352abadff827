// Package compress provides the payload codecs used when a label mapping is
// persisted.
//
// The record list of a mapping is compressed as one block after it has been
// serialized. The codec in use is recorded in the blob header, so a mapping
// written with one codec can be read by any process regardless of its own
// configuration.
//
// Supported algorithms:
//   - None: payload stored as is
//   - Zstd: best ratio, the usual choice for large vocabularies
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation. Building with
// the gozstd tag and cgo enabled switches to the valyala/gozstd bindings.
package compress
