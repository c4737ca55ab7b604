package format

import (
	"math"
	"strconv"
)

// ValueKind discriminates the variants of a Value.
type ValueKind uint8

const (
	KindInt    ValueKind = iota // signed 32-bit integer
	KindUint                    // unsigned 32-bit integer
	KindFloat                   // 32-bit float
	KindString                  // decoded string
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Value is the tagged union stored in table records: a signed or
// unsigned 32-bit integer, a 32-bit float, or a decoded string.
// The zero Value is Int(0).
//
// Values are small and immutable; copy them freely.
type Value struct {
	str  string
	bits uint32
	kind ValueKind
}

// IntValue wraps a signed integer.
func IntValue(v int32) Value {
	return Value{kind: KindInt, bits: uint32(v)} //nolint:gosec
}

// UintValue wraps an unsigned integer.
func UintValue(v uint32) Value {
	return Value{kind: KindUint, bits: v}
}

// FloatValue wraps a 32-bit float.
func FloatValue(v float32) Value {
	return Value{kind: KindFloat, bits: math.Float32bits(v)}
}

// StringValue wraps a string.
func StringValue(v string) Value {
	return Value{kind: KindString, str: v}
}

// Kind returns the variant stored in the value.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the signed integer variant. The second result is false
// for non-integer values.
func (v Value) Int() (int32, bool) {
	if v.kind != KindInt && v.kind != KindUint {
		return 0, false
	}

	return int32(v.bits), true //nolint:gosec
}

// Uint returns the unsigned integer variant. The second result is
// false for non-integer values.
func (v Value) Uint() (uint32, bool) {
	if v.kind != KindInt && v.kind != KindUint {
		return 0, false
	}

	return v.bits, true
}

// Float returns the float variant. The second result is false for
// non-float values.
func (v Value) Float() (float32, bool) {
	if v.kind != KindFloat {
		return 0, false
	}

	return math.Float32frombits(v.bits), true
}

// Str returns the string variant. The second result is false for
// non-string values.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// Equal reports whether two values hold the same variant and payload.
// Float comparison is bit-exact.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		// Signed and unsigned integers with identical bits compare
		// equal; the distinction is a storage hint, not a payload.
		intKinds := (v.kind == KindInt || v.kind == KindUint) &&
			(other.kind == KindInt || other.kind == KindUint)
		if !intKinds {
			return false
		}
	}
	if v.kind == KindString {
		return v.str == other.str
	}

	return v.bits == other.bits
}

// Text formats the value for CSV export: integers in decimal, floats
// with the shortest representation that round-trips a float32, strings
// verbatim.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(int32(v.bits)), 10) //nolint:gosec
	case KindUint:
		return strconv.FormatUint(uint64(v.bits), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(math.Float32frombits(v.bits)), 'g', -1, 32)
	default:
		return v.str
	}
}
