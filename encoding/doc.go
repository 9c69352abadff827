// Package encoding serializes category/label pairs as a flat record list.
//
// Each record is encoded as:
//   - 1 byte: category kind (format.KindType)
//   - uvarint: label
//   - key, depending on kind:
//   - String: uvarint length followed by the UTF-8 bytes
//   - Int: zigzag varint
//   - Float: 8 bytes IEEE 754 bits in the engine's byte order
//   - Bool: 1 byte, 0 or 1
//
// The record list has no framing of its own; the number of records is kept
// in the blob header (see package section).
package encoding
