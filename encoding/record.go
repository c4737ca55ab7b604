package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/bcsv/endian"
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/section"
)

// RecordCodec extracts and injects single field values from and into a
// fixed-stride record buffer. Extraction applies the descriptor's mask
// and shift, then reinterprets the raw bits per the type tag; injection
// is the inverse and preserves the untouched bits of a storage word
// shared with other packed fields.
type RecordCodec struct {
	engine endian.EndianEngine
}

// NewRecordCodec creates a codec reading and writing multi-byte words
// in the order of the supplied engine.
func NewRecordCodec(engine endian.EndianEngine) RecordCodec {
	return RecordCodec{engine: engine}
}

// ExtractRaw returns the raw unsigned value of a field: the storage
// word with mask and shift applied for the masked integer types, the
// unmodified word for Float and StringOffset. Inline string fields
// have no raw value; use ExtractInline.
func (c RecordCodec) ExtractRaw(record []byte, fe section.FieldEntry) (uint32, error) {
	if err := checkBounds(record, fe); err != nil {
		return 0, err
	}

	off := int(fe.Offset)
	switch fe.Type {
	case format.TypeLong, format.TypeUnsignedLong:
		raw := c.engine.Uint32(record[off : off+4])
		return (raw & fe.Mask) >> fe.Shift, nil
	case format.TypeShort:
		raw := uint32(c.engine.Uint16(record[off : off+2]))
		return (raw & fe.Mask) >> fe.Shift, nil
	case format.TypeChar:
		raw := uint32(record[off])
		return (raw & fe.Mask) >> fe.Shift, nil
	case format.TypeFloat, format.TypeStringOffset:
		return c.engine.Uint32(record[off : off+4]), nil
	default:
		return 0, errs.Layout(fe.Hash, "type %s has no raw word", fe.Type)
	}
}

// Extract returns the typed value of a field. Signed types sign-extend
// from the top bit of their storage word after mask and shift, so a
// packed negative survives extraction. StringOffset yields the pool
// offset as an unsigned value; resolving it against the pool is the
// caller's step.
func (c RecordCodec) Extract(record []byte, fe section.FieldEntry) (format.Value, error) {
	raw, err := c.ExtractRaw(record, fe)
	if err != nil {
		return format.Value{}, err
	}

	switch fe.Type {
	case format.TypeLong:
		return format.IntValue(int32(raw)), nil //nolint:gosec
	case format.TypeUnsignedLong, format.TypeStringOffset:
		return format.UintValue(raw), nil
	case format.TypeShort:
		if raw&0x8000 != 0 {
			raw |= 0xFFFF0000
		}
		return format.IntValue(int32(raw)), nil //nolint:gosec
	case format.TypeChar:
		if raw&0x80 != 0 {
			raw |= 0xFFFFFF00
		}
		return format.IntValue(int32(raw)), nil //nolint:gosec
	case format.TypeFloat:
		return format.FloatValue(math.Float32frombits(raw)), nil
	default:
		return format.Value{}, errs.Layout(fe.Hash, "type %s is not extractable", fe.Type)
	}
}

// ExtractInline returns the bytes of an inline string field up to its
// null terminator, or all 32 bytes when none is present.
func (c RecordCodec) ExtractInline(record []byte, fe section.FieldEntry) ([]byte, error) {
	if fe.Type != format.TypeString {
		return nil, errs.Layout(fe.Hash, "type %s is not an inline string", fe.Type)
	}
	if err := checkBounds(record, fe); err != nil {
		return nil, err
	}

	raw := record[fe.Offset : int(fe.Offset)+fe.Type.Size()]
	for i, b := range raw {
		if b == 0 {
			return raw[:i], nil
		}
	}

	return raw, nil
}

// Inject writes a raw unsigned value into a field's storage location.
// For the masked integer types the value is shifted into position and
// merged under the mask, leaving the other bits of a shared word
// untouched. Float and StringOffset overwrite their whole word.
func (c RecordCodec) Inject(record []byte, fe section.FieldEntry, raw uint32) error {
	if err := checkBounds(record, fe); err != nil {
		return err
	}

	off := int(fe.Offset)
	switch fe.Type {
	case format.TypeLong, format.TypeUnsignedLong:
		existing := c.engine.Uint32(record[off : off+4])
		merged := (existing &^ fe.Mask) | ((raw << fe.Shift) & fe.Mask)
		c.engine.PutUint32(record[off:off+4], merged)
	case format.TypeShort:
		existing := uint32(c.engine.Uint16(record[off : off+2]))
		merged := (existing &^ fe.Mask) | ((raw << fe.Shift) & fe.Mask)
		c.engine.PutUint16(record[off:off+2], uint16(merged)) //nolint:gosec
	case format.TypeChar:
		existing := uint32(record[off])
		merged := (existing &^ fe.Mask) | ((raw << fe.Shift) & fe.Mask)
		record[off] = uint8(merged) //nolint:gosec
	case format.TypeFloat, format.TypeStringOffset:
		c.engine.PutUint32(record[off:off+4], raw)
	default:
		return errs.Layout(fe.Hash, "type %s has no raw word", fe.Type)
	}

	return nil
}

// InjectInline writes encoded inline string bytes into a 32-byte
// field. The encoded bytes plus terminator must fit; the remainder of
// the field is zero-filled.
func (c RecordCodec) InjectInline(record []byte, fe section.FieldEntry, encoded []byte) error {
	if fe.Type != format.TypeString {
		return errs.Layout(fe.Hash, "type %s is not an inline string", fe.Type)
	}
	if err := checkBounds(record, fe); err != nil {
		return err
	}

	size := fe.Type.Size()
	if len(encoded) >= size {
		return fmt.Errorf("%w: inline string of %d bytes exceeds %d-byte field",
			errs.ErrEncoding, len(encoded), size-1)
	}

	field := record[fe.Offset : int(fe.Offset)+size]
	n := copy(field, encoded)
	for i := n; i < size; i++ {
		field[i] = 0
	}

	return nil
}

func checkBounds(record []byte, fe section.FieldEntry) error {
	end := int(fe.Offset) + fe.Type.Size()
	if end > len(record) {
		return errs.Layout(fe.Hash, "offset %d + size %d exceeds record of %d bytes",
			fe.Offset, fe.Type.Size(), len(record))
	}

	return nil
}
