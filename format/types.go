package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	KindType        uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindString KindType = 0x1 // KindString represents a UTF-8 string category.
	KindInt    KindType = 0x2 // KindInt represents a signed 64-bit integer category.
	KindFloat  KindType = 0x3 // KindFloat represents a 64-bit floating point category.
	KindBool   KindType = 0x4 // KindBool represents a boolean category.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompression parses a case-insensitive compression name.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}

func (k KindType) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is one of the supported category kinds.
func (k KindType) IsValid() bool {
	return k >= KindString && k <= KindBool
}

// ParseKind parses a case-insensitive category kind name.
func ParseKind(name string) (KindType, error) {
	switch strings.ToLower(name) {
	case "", "string", "str":
		return KindString, nil
	case "int", "int64":
		return KindInt, nil
	case "float", "float64":
		return KindFloat, nil
	case "bool":
		return KindBool, nil
	default:
		return 0, fmt.Errorf("unknown category kind: %q", name)
	}
}
