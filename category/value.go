// Package category defines the value type used as a key of a label mapping.
//
// A Value remembers the kind it was created with, so a mapping persisted with
// integer categories decodes back to integer categories. Values are comparable
// and can be used directly as map keys.
package category

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/lencoder/format"
)

// Value is a single categorical value.
//
// The zero Value has no kind and is rejected by the mapping.
type Value struct {
	kind format.KindType
	str  string
	bits uint64 // int64, float64 bits or bool (0/1), depending on kind
}

// String creates a string category.
func String(s string) Value {
	return Value{kind: format.KindString, str: s}
}

// Int creates an integer category.
func Int(i int64) Value {
	return Value{kind: format.KindInt, bits: uint64(i)} //nolint:gosec
}

// Float creates a floating point category.
//
// Floats are compared by their bit pattern, so 0.0 and -0.0 are different
// categories and a NaN is equal to a NaN with the same payload.
func Float(f float64) Value {
	return Value{kind: format.KindFloat, bits: math.Float64bits(f)}
}

// Bool creates a boolean category.
func Bool(b bool) Value {
	v := Value{kind: format.KindBool}
	if b {
		v.bits = 1
	}

	return v
}

// Kind returns the kind of the value.
func (v Value) Kind() format.KindType {
	return v.kind
}

// IsValid reports whether the value was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.kind.IsValid()
}

// Str returns the string payload. It is empty unless Kind is KindString.
func (v Value) Str() string {
	return v.str
}

// Int64 returns the integer payload. It is zero unless Kind is KindInt.
func (v Value) Int64() int64 {
	if v.kind != format.KindInt {
		return 0
	}

	return int64(v.bits) //nolint:gosec
}

// Float64 returns the float payload. It is zero unless Kind is KindFloat.
func (v Value) Float64() float64 {
	if v.kind != format.KindFloat {
		return 0
	}

	return math.Float64frombits(v.bits)
}

// Bool returns the boolean payload. It is false unless Kind is KindBool.
func (v Value) Bool() bool {
	return v.kind == format.KindBool && v.bits != 0
}

// Any returns the payload as a plain Go value (string, int64, float64 or bool).
func (v Value) Any() any {
	switch v.kind {
	case format.KindString:
		return v.str
	case format.KindInt:
		return v.Int64()
	case format.KindFloat:
		return v.Float64()
	case format.KindBool:
		return v.Bool()
	default:
		return nil
	}
}

// String formats the payload without kind information.
func (v Value) String() string {
	switch v.kind {
	case format.KindString:
		return v.str
	case format.KindInt:
		return strconv.FormatInt(v.Int64(), 10)
	case format.KindFloat:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case format.KindBool:
		return strconv.FormatBool(v.Bool())
	default:
		return "<invalid>"
	}
}

// GoString formats the value together with its kind, e.g. Int(3).
func (v Value) GoString() string {
	if v.kind == format.KindString {
		return fmt.Sprintf("String(%q)", v.str)
	}

	return fmt.Sprintf("%s(%s)", v.kind, v.String())
}

// Compare orders values by kind first and then by payload.
// Floats use cmp.Compare semantics, which places NaN first.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}

	switch a.kind {
	case format.KindString:
		return cmp.Compare(a.str, b.str)
	case format.KindInt:
		return cmp.Compare(a.Int64(), b.Int64())
	case format.KindFloat:
		if c := cmp.Compare(a.Float64(), b.Float64()); c != 0 {
			return c
		}
		// Distinguish -0/+0 and NaN payloads so Compare agrees with ==.
		return cmp.Compare(a.bits, b.bits)
	default:
		return cmp.Compare(a.bits, b.bits)
	}
}

// Parse parses text as a value of the given kind.
func Parse(kind format.KindType, text string) (Value, error) {
	switch kind {
	case format.KindString:
		return String(text), nil
	case format.KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse int category %q: %w", text, err)
		}

		return Int(i), nil
	case format.KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse float category %q: %w", text, err)
		}

		return Float(f), nil
	case format.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("parse bool category %q: %w", text, err)
		}

		return Bool(b), nil
	default:
		return Value{}, fmt.Errorf("unsupported category kind: %v", kind)
	}
}
