package section

import (
	"github.com/arloliu/lencoder/errs"
	"github.com/arloliu/lencoder/format"
)

// Flag is the packed flag field at the start of a mapping header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number, 0xEC10 for mapping format v1.
	Options uint16

	// Compression indicates the codec applied to the payload.
	Compression uint8

	// Reserved must be zero.
	Reserved uint8
}

// NewFlag creates a little-endian, uncompressed flag.
func NewFlag() Flag {
	return Flag{
		Options:     MagicMappingV1Opt,
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether fixed-width fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether fixed-width fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number bits of the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload codec.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload codec.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits and codec.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicMappingV1Opt {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedBitsMask != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
