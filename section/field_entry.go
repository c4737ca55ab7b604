package section

import (
	"github.com/arloliu/bcsv/endian"
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
)

// FieldEntry is one on-disk field descriptor: the hash identity of a
// column plus the storage location of its value inside a record.
//
// Narrow fields may share a storage word: Mask selects the field's
// bits within the word and Shift moves them down to bit zero.
type FieldEntry struct {
	// Hash is the field-name hash identifying the column.
	Hash uint32 // byte offset 0-3
	// Mask selects the field's bits within its storage word.
	Mask uint32 // byte offset 4-7
	// Offset is the field's byte offset inside a record.
	Offset uint16 // byte offset 8-9
	// Shift is the right-shift applied after masking.
	Shift uint8 // byte offset 10
	// Type is the field's data type tag.
	Type format.FieldType // byte offset 11
}

// NewFieldEntry creates a descriptor for a field with the type's
// conventional full-word mask and no shift.
func NewFieldEntry(hash uint32, typ format.FieldType) FieldEntry {
	return FieldEntry{
		Hash: hash,
		Mask: typ.DefaultMask(),
		Type: typ,
	}
}

// Parse parses the descriptor from a byte slice of exactly
// FieldEntrySize bytes. An unrecognized type tag fails with an
// UnknownTypeError; best-effort coercion would corrupt every record
// that follows.
func (f *FieldEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != FieldEntrySize {
		return errs.Truncated("field descriptors", FieldEntrySize, len(data))
	}

	f.Hash = engine.Uint32(data[fieldHashOffset : fieldHashOffset+4])
	f.Mask = engine.Uint32(data[fieldMaskOffset : fieldMaskOffset+4])
	f.Offset = engine.Uint16(data[fieldOffsetOffset : fieldOffsetOffset+2])
	f.Shift = data[fieldShiftOffset]

	typ, ok := format.ParseFieldType(data[fieldTypeOffset])
	if !ok {
		return &errs.UnknownTypeError{Tag: data[fieldTypeOffset]}
	}
	f.Type = typ

	return nil
}

// Bytes serializes the descriptor into a fresh FieldEntrySize byte
// slice.
func (f *FieldEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, FieldEntrySize)
	engine.PutUint32(b[fieldHashOffset:fieldHashOffset+4], f.Hash)
	engine.PutUint32(b[fieldMaskOffset:fieldMaskOffset+4], f.Mask)
	engine.PutUint16(b[fieldOffsetOffset:fieldOffsetOffset+2], f.Offset)
	b[fieldShiftOffset] = f.Shift
	b[fieldTypeOffset] = uint8(f.Type)

	return b
}

// ParseFieldEntries parses count descriptors starting at
// data[HeaderSize].
func ParseFieldEntries(data []byte, count int, engine endian.EndianEngine) ([]FieldEntry, error) {
	end := HeaderSize + count*FieldEntrySize
	if len(data) < end {
		return nil, errs.Truncated("field descriptors", end, len(data))
	}

	entries := make([]FieldEntry, count)
	for i := range entries {
		off := HeaderSize + i*FieldEntrySize
		if err := entries[i].Parse(data[off:off+FieldEntrySize], engine); err != nil {
			return nil, err
		}
	}

	return entries, nil
}
