package encoding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/endian"
	"github.com/arloliu/lencoder/errs"
	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/internal/pool"
)

// MaxLabel is the largest label a record can carry.
const MaxLabel = math.MaxInt32

// Record is a decoded category/label pair.
type Record struct {
	Value category.Value
	Label int
}

// RecordEncoder appends category/label records to a pooled buffer.
type RecordEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewRecordEncoder creates an encoder that writes floats with engine.
func NewRecordEncoder(engine endian.EndianEngine) *RecordEncoder {
	return &RecordEncoder{
		engine: engine,
		buf:    pool.GetRecordBuffer(),
	}
}

// Write appends one record.
//
// It fails if value is not a valid category or label is outside
// [0, MaxLabel]. Nothing is written on failure.
func (e *RecordEncoder) Write(value category.Value, label int) error {
	if label < 0 || label > MaxLabel {
		return fmt.Errorf("%w: label %d out of range", errs.ErrInvalidRecord, label)
	}

	kind := value.Kind()
	switch kind {
	case format.KindString:
		s := value.Str()
		e.buf.Grow(1 + 2*binary.MaxVarintLen32 + len(s))
		e.writeHead(kind, label)
		e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(s)))
		e.buf.WriteString(s)
	case format.KindInt:
		e.buf.Grow(1 + binary.MaxVarintLen32 + binary.MaxVarintLen64)
		e.writeHead(kind, label)
		e.buf.B = binary.AppendVarint(e.buf.B, value.Int64())
	case format.KindFloat:
		e.buf.Grow(1 + binary.MaxVarintLen32 + 8)
		e.writeHead(kind, label)
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(value.Float64()))
	case format.KindBool:
		e.buf.Grow(1 + binary.MaxVarintLen32 + 1)
		e.writeHead(kind, label)
		var b byte
		if value.Bool() {
			b = 1
		}
		_ = e.buf.WriteByte(b)
	default:
		return fmt.Errorf("%w: category kind %v", errs.ErrInvalidRecord, kind)
	}

	e.count++

	return nil
}

func (e *RecordEncoder) writeHead(kind format.KindType, label int) {
	_ = e.buf.WriteByte(byte(kind))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(label))
}

// Bytes returns the encoded records.
//
// The slice shares memory with the encoder and is invalid after Reset.
func (e *RecordEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of records written.
func (e *RecordEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *RecordEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used again.
func (e *RecordEncoder) Reset() {
	if e.buf != nil {
		pool.PutRecordBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// RecordDecoder reads records produced by RecordEncoder.
type RecordDecoder struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewRecordDecoder creates a decoder over data. Floats are read with engine.
func NewRecordDecoder(data []byte, engine endian.EndianEngine) *RecordDecoder {
	return &RecordDecoder{data: data, engine: engine}
}

// Remaining returns the number of unread bytes.
func (d *RecordDecoder) Remaining() int {
	return len(d.data) - d.offset
}

// Next decodes the next record. It returns io.EOF once all data is consumed
// and an error wrapping errs.ErrInvalidRecord for malformed input.
func (d *RecordDecoder) Next() (Record, error) {
	if d.offset >= len(d.data) {
		return Record{}, io.EOF
	}

	start := d.offset
	kind := format.KindType(d.data[d.offset])
	d.offset++

	rawLabel, err := d.uvarint()
	if err != nil {
		return Record{}, d.fail(start, "label", err)
	}
	if rawLabel > MaxLabel {
		return Record{}, d.fail(start, "label", fmt.Errorf("label %d out of range", rawLabel))
	}

	var value category.Value
	switch kind {
	case format.KindString:
		n, err := d.uvarint()
		if err != nil {
			return Record{}, d.fail(start, "string length", err)
		}
		if n > uint64(d.Remaining()) {
			return Record{}, d.fail(start, "string", io.ErrUnexpectedEOF)
		}
		s := d.data[d.offset : d.offset+int(n)] //nolint:gosec
		value = category.String(string(s))
		d.offset += int(n) //nolint:gosec
	case format.KindInt:
		i, n := binary.Varint(d.data[d.offset:])
		if n <= 0 {
			return Record{}, d.fail(start, "int", io.ErrUnexpectedEOF)
		}
		value = category.Int(i)
		d.offset += n
	case format.KindFloat:
		if d.Remaining() < 8 {
			return Record{}, d.fail(start, "float", io.ErrUnexpectedEOF)
		}
		value = category.Float(math.Float64frombits(d.engine.Uint64(d.data[d.offset:])))
		d.offset += 8
	case format.KindBool:
		if d.Remaining() < 1 {
			return Record{}, d.fail(start, "bool", io.ErrUnexpectedEOF)
		}
		b := d.data[d.offset]
		if b > 1 {
			return Record{}, d.fail(start, "bool", fmt.Errorf("invalid byte 0x%02x", b))
		}
		value = category.Bool(b == 1)
		d.offset++
	default:
		return Record{}, d.fail(start, "kind", fmt.Errorf("unknown kind 0x%02x", byte(kind)))
	}

	return Record{Value: value, Label: int(rawLabel)}, nil
}

func (d *RecordDecoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.offset:])
	if n == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if n < 0 {
		return 0, errors.New("varint overflow")
	}
	d.offset += n

	return v, nil
}

func (d *RecordDecoder) fail(offset int, field string, err error) error {
	return fmt.Errorf("%w: %s at offset %d: %w", errs.ErrInvalidRecord, field, offset, err)
}
