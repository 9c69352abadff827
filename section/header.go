package section

import (
	"github.com/arloliu/lencoder/endian"
	"github.com/arloliu/lencoder/errs"
)

// Header is the 32-byte fixed header of a mapping blob.
type Header struct {
	Flag Flag // 4 bytes, offset 0-3

	// EntryCount is the number of category/label records.
	EntryCount uint32 // 4 bytes, offset 4-7
	// LabelSpan is the largest label plus one, 0 for an empty mapping.
	LabelSpan uint32 // 4 bytes, offset 8-11
	// PayloadSize is the stored (possibly compressed) payload size.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// RawSize is the payload size before compression.
	RawSize uint32 // 4 bytes, offset 16-19
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 20-27

	Reserved [4]byte // must be zero, offset 28-31
}

// NewHeader creates a header with default flags for entryCount records.
func NewHeader(entryCount int) (*Header, error) {
	if entryCount < 0 || entryCount > MaxEntryCount {
		return nil, errs.ErrTooManyEntries
	}

	return &Header{
		Flag:       NewFlag(),
		EntryCount: uint32(entryCount), //nolint:gosec
	}, nil
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.EntryCount = engine.Uint32(data[4:8])
	h.LabelSpan = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])
	copy(h.Reserved[:], data[28:32])

	if h.Reserved != [4]byte{} {
		return errs.ErrInvalidHeaderFlags
	}
	if h.EntryCount > MaxEntryCount {
		return errs.ErrTooManyEntries
	}
	if h.LabelSpan < h.EntryCount {
		// n distinct labels cannot fit below a span smaller than n.
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Reserved

	engine := h.GetEndianEngine()
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.LabelSpan)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint32(b[16:20], h.RawSize)
	engine.PutUint64(b[20:28], h.Checksum)
	copy(b[28:32], h.Reserved[:])

	return b
}

// GetEndianEngine returns the engine matching the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.FromFlag(h.Flag.IsBigEndian())
}
