// Package format defines the BCSV field type tags, the tagged value
// union stored in table records, and the compression identifiers for
// at-rest table dumps.
package format

import "math"

// FieldType is the on-disk type tag of a BCSV field descriptor.
type FieldType uint8

const (
	// TypeLong is a signed 32-bit integer (4 bytes).
	TypeLong FieldType = 0
	// TypeString is an inline fixed-length string (32 bytes).
	// Deprecated in the format; retained for old files.
	TypeString FieldType = 1
	// TypeFloat is a 32-bit float (4 bytes).
	TypeFloat FieldType = 2
	// TypeUnsignedLong is an unsigned 32-bit integer (4 bytes).
	TypeUnsignedLong FieldType = 3
	// TypeShort is a signed 16-bit integer (2 bytes).
	TypeShort FieldType = 4
	// TypeChar is a signed 8-bit integer (1 byte).
	TypeChar FieldType = 5
	// TypeStringOffset is a 4-byte offset into the string pool.
	TypeStringOffset FieldType = 6
)

// CompressionType identifies an at-rest compression codec for stored
// table dumps. It is not part of the BCSV format itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // no compression
	CompressionZstd CompressionType = 0x2 // Zstandard
	CompressionS2   CompressionType = 0x3 // S2
	CompressionLZ4  CompressionType = 0x4 // LZ4 block
)

// ParseFieldType converts a raw on-disk tag into a FieldType.
// The second result is false for tags this codec does not recognize.
func ParseFieldType(raw uint8) (FieldType, bool) {
	if raw > uint8(TypeStringOffset) {
		return 0, false
	}

	return FieldType(raw), true
}

// Size returns the storage size of the field type in bytes.
func (t FieldType) Size() int {
	switch t {
	case TypeString:
		return 32
	case TypeShort:
		return 2
	case TypeChar:
		return 1
	default:
		return 4
	}
}

// DefaultMask returns the conventional bitmask for the field type,
// covering the full storage word of the numeric types.
func (t FieldType) DefaultMask() uint32 {
	switch t {
	case TypeString:
		return 0x00000000
	case TypeShort:
		return 0x0000FFFF
	case TypeChar:
		return 0x000000FF
	default:
		return 0xFFFFFFFF
	}
}

// Order returns the field's rank in the canonical layout ordering used
// when computing fresh record offsets. Wider types pack first so the
// stride stays naturally aligned.
func (t FieldType) Order() int {
	switch t {
	case TypeString:
		return 0
	case TypeFloat:
		return 1
	case TypeLong:
		return 2
	case TypeUnsignedLong:
		return 3
	case TypeShort:
		return 4
	case TypeChar:
		return 5
	default: // TypeStringOffset
		return 6
	}
}

// IsString reports whether the type stores string data, either inline
// or through the string pool.
func (t FieldType) IsString() bool {
	return t == TypeString || t == TypeStringOffset
}

// String returns the type's CSV header name. These names match the
// conventional BCSV tooling vocabulary: the pool-offset type is the
// everyday "String", the deprecated inline type is "EmbeddedString".
func (t FieldType) String() string {
	switch t {
	case TypeLong:
		return "Int"
	case TypeString:
		return "EmbeddedString"
	case TypeFloat:
		return "Float"
	case TypeUnsignedLong:
		return "UnsignedInt"
	case TypeShort:
		return "Short"
	case TypeChar:
		return "Char"
	case TypeStringOffset:
		return "String"
	default:
		return "Unknown"
	}
}

// ParseFieldTypeName converts a CSV header type name back into a
// FieldType. The second result is false for unknown names.
func ParseFieldTypeName(name string) (FieldType, bool) {
	switch name {
	case "Int":
		return TypeLong, true
	case "EmbeddedString":
		return TypeString, true
	case "Float":
		return TypeFloat, true
	case "UnsignedInt":
		return TypeUnsignedLong, true
	case "Short":
		return TypeShort, true
	case "Char":
		return TypeChar, true
	case "String":
		return TypeStringOffset, true
	default:
		return 0, false
	}
}

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

// DefaultValue returns the zero value for the field type: 0 for the
// numeric types, 0.0 for floats, "" for both string types.
func (t FieldType) DefaultValue() Value {
	switch t {
	case TypeFloat:
		return FloatValue(0)
	case TypeUnsignedLong:
		return UintValue(0)
	case TypeString, TypeStringOffset:
		return StringValue("")
	default:
		return IntValue(0)
	}
}

// Compatible reports whether a value kind may be stored in a field of
// this type. Signed and unsigned integer values are interchangeable;
// the field type decides the on-disk interpretation.
func (t FieldType) Compatible(v Value) bool {
	switch t {
	case TypeLong, TypeShort, TypeChar, TypeUnsignedLong:
		return v.Kind() == KindInt || v.Kind() == KindUint
	case TypeFloat:
		return v.Kind() == KindFloat
	case TypeString, TypeStringOffset:
		return v.Kind() == KindString
	default:
		return false
	}
}

// RawBits converts a value to the raw (pre-mask, pre-shift) storage
// word for this field type. Strings have no raw representation and
// return false.
func (t FieldType) RawBits(v Value) (uint32, bool) {
	switch t {
	case TypeLong, TypeShort, TypeChar, TypeUnsignedLong:
		if i, ok := v.Int(); ok {
			return uint32(i), true //nolint:gosec
		}
		if u, ok := v.Uint(); ok {
			return u, true
		}
	case TypeFloat:
		if f, ok := v.Float(); ok {
			return math.Float32bits(f), true
		}
	}

	return 0, false
}
