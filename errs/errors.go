// Package errs defines the error values reported by the bcsv codec.
//
// All failure modes are distinct, inspectable error values. Sentinel
// errors cover conditions with no useful payload; structured types
// carry the detail a caller needs to diagnose a bad file (which region
// was truncated, which offset escaped the string pool, and so on).
// Every structured type unwraps to its sentinel, so callers can always
// match with errors.Is and optionally dig deeper with errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput indicates the input buffer is too small for a
	// region the header declares.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrLayout indicates a field descriptor violates a layout
	// invariant (out-of-range offset or overlapping packed masks).
	ErrLayout = errors.New("invalid record layout")

	// ErrStringPool indicates a string reference escapes the pool or
	// lacks a null terminator before the pool end.
	ErrStringPool = errors.New("invalid string pool reference")

	// ErrEncoding indicates a byte sequence is not representable or
	// decodable in the configured character encoding.
	ErrEncoding = errors.New("string encoding error")

	// ErrUnknownType indicates a field type tag this codec version
	// does not recognize.
	ErrUnknownType = errors.New("unknown field type")

	// ErrSchemaInference indicates CSV import could not determine a
	// column's type from its cells.
	ErrSchemaInference = errors.New("cannot infer column schema")

	// ErrHashCollision indicates two distinct known names share a
	// field hash. Collisions are surfaced, never auto-resolved.
	ErrHashCollision = errors.New("field name hash collision")

	// ErrFieldNotFound indicates a field is absent from the layout.
	ErrFieldNotFound = errors.New("field not found")

	// ErrFieldExists indicates an attempt to add a field that is
	// already present in the layout.
	ErrFieldExists = errors.New("field already exists")

	// ErrTypeMismatch indicates a value's kind does not match its
	// field's declared type.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrIndexOutOfRange indicates a record index outside the table.
	ErrIndexOutOfRange = errors.New("record index out of range")

	// ErrLayoutFrozen indicates a layout mutation on a table decoded
	// in lossless mode, where the on-disk layout must stay intact.
	ErrLayoutFrozen = errors.New("layout is frozen in lossless mode")
)

// TruncatedError reports an input region with fewer bytes than the
// header declares for it.
type TruncatedError struct {
	Region string // "header", "field descriptors", "row data", "string pool"
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: %s needs %d bytes, have %d", e.Region, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedInput }

// Truncated builds a TruncatedError for the named region.
func Truncated(region string, need, have int) error {
	return &TruncatedError{Region: region, Need: need, Have: have}
}

// LayoutError reports a descriptor that violates a layout invariant.
type LayoutError struct {
	Hash   uint32
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid record layout: field %08X: %s", e.Hash, e.Reason)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }

// Layout builds a LayoutError for the field with the given hash.
func Layout(hash uint32, format string, args ...any) error {
	return &LayoutError{Hash: hash, Reason: fmt.Sprintf(format, args...)}
}

// StringPoolError reports a string reference that cannot be resolved
// within the pool.
type StringPoolError struct {
	Offset   uint32
	PoolSize int
	Reason   string
}

func (e *StringPoolError) Error() string {
	return fmt.Sprintf("invalid string pool reference: offset %d in %d-byte pool: %s", e.Offset, e.PoolSize, e.Reason)
}

func (e *StringPoolError) Unwrap() error { return ErrStringPool }

// UnknownTypeError reports an unrecognized field type tag.
type UnknownTypeError struct {
	Tag uint8
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown field type: 0x%02X", e.Tag)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// HashCollisionError reports two distinct names folding to one hash.
type HashCollisionError struct {
	Hash  uint32
	Names []string
}

func (e *HashCollisionError) Error() string {
	return fmt.Sprintf("field name hash collision: %08X claimed by %v", e.Hash, e.Names)
}

func (e *HashCollisionError) Unwrap() error { return ErrHashCollision }

// SchemaError reports a CSV column whose cells disagree about the
// column's type.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("cannot infer column schema: column %q: %s", e.Column, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaInference }
