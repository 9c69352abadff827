package codec

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/lencoder/compress"
	"github.com/arloliu/lencoder/encoding"
	"github.com/arloliu/lencoder/endian"
	"github.com/arloliu/lencoder/errs"
	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/internal/hash"
	"github.com/arloliu/lencoder/internal/options"
	"github.com/arloliu/lencoder/mapping"
	"github.com/arloliu/lencoder/section"
)

// Codec serializes mappings. It is immutable after New and safe for
// concurrent use.
type Codec struct {
	compression format.CompressionType
	bigEndian   bool
}

// New creates a codec. Without options it writes little-endian, uncompressed blobs.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{compression: format.CompressionNone}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compression returns the compression used by Marshal.
func (c *Codec) Compression() format.CompressionType {
	return c.compression
}

// Marshal serializes m.
func (c *Codec) Marshal(m *mapping.Mapping) ([]byte, error) {
	header, err := section.NewHeader(m.Len())
	if err != nil {
		return nil, err
	}
	if c.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(c.compression)
	engine := header.GetEndianEngine()

	enc := encoding.NewRecordEncoder(engine)
	defer enc.Reset()

	for _, e := range m.Entries() {
		if err := enc.Write(e.Category, e.Label); err != nil {
			return nil, err
		}
	}

	raw := enc.Bytes()
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManyEntries, len(raw))
	}

	codec, err := compress.GetCodec(c.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress mapping payload: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrTooManyEntries, len(payload))
	}

	header.LabelSpan = uint32(m.MaxLabel() + 1) //nolint:gosec
	header.RawSize = uint32(len(raw))            //nolint:gosec
	header.PayloadSize = uint32(len(payload))    //nolint:gosec
	header.Checksum = hash.Checksum(raw)

	// payload may alias the pooled encoder buffer, so copy it out before Reset.
	blob := make([]byte, 0, section.HeaderSize+len(payload))
	blob = append(blob, header.Bytes()...)
	blob = append(blob, payload...)

	return blob, nil
}

// Unmarshal decodes a blob produced by any Codec.
func (c *Codec) Unmarshal(data []byte) (*mapping.Mapping, error) {
	m, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, err)
	}

	return m, nil
}

// ReadHeader parses and validates only the header of a blob.
func ReadHeader(data []byte) (*section.Header, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, errs.ErrInvalidHeaderSize)
	}

	var header section.Header
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, err)
	}

	return &header, nil
}

func decode(data []byte) (*mapping.Mapping, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var header section.Header
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	payload := data[section.PayloadOffset:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d, got %d", errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	codec, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}
	if len(raw) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: raw size %d, header says %d", errs.ErrInvalidPayloadSize, len(raw), header.RawSize)
	}
	if !hash.Verify(raw, header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	return decodeRecords(raw, header.GetEndianEngine(), &header)
}

func decodeRecords(raw []byte, engine endian.EndianEngine, header *section.Header) (*mapping.Mapping, error) {
	count := int(header.EntryCount)
	// Every record takes at least three bytes, which bounds the allocation
	// for a header claiming an absurd entry count.
	m := mapping.NewWithCapacity(min(count, len(raw)/3))
	dec := encoding.NewRecordDecoder(raw, engine)

	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if m.Len() == count {
			return nil, fmt.Errorf("%w: more than %d records", errs.ErrEntryCountMismatch, count)
		}
		if rec.Label >= int(header.LabelSpan) {
			return nil, fmt.Errorf("%w: label %d outside span %d", errs.ErrInvalidRecord, rec.Label, header.LabelSpan)
		}
		if err := m.Set(rec.Value, rec.Label); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
		}
	}

	if m.Len() != count {
		return nil, fmt.Errorf("%w: header says %d, decoded %d", errs.ErrEntryCountMismatch, count, m.Len())
	}
	if m.MaxLabel()+1 != int(header.LabelSpan) {
		return nil, fmt.Errorf("%w: label span %d, max label %d", errs.ErrInvalidRecord, header.LabelSpan, m.MaxLabel())
	}

	return m, nil
}
