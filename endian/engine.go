// Package endian selects the byte order used for the fixed-width fields of a
// persisted label mapping.
//
// Mappings are written little-endian by default. A big-endian blob is still
// readable everywhere because the header records the order it was written in.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so one
// value can both decode fixed slices and append to growing buffers.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// FromFlag returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func FromFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}
