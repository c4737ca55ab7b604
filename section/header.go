// Package section implements the fixed-size sections of a BCSV file:
// the 16-byte header and the 12-byte field descriptors that precede
// the row data block.
//
// Both structures parse from and serialize to exact-size byte slices
// with an explicitly supplied endian engine; nothing in this package
// assumes a byte order.
package section

import (
	"github.com/arloliu/bcsv/endian"
	"github.com/arloliu/bcsv/errs"
)

// Header is the fixed-size header at the start of a BCSV file.
type Header struct {
	// EntryCount is the number of records in the row data block.
	EntryCount uint32 // byte offset 0-3
	// FieldCount is the number of field descriptors after the header.
	FieldCount uint32 // byte offset 4-7
	// DataOffset is the byte offset where the row data block begins.
	// The string pool follows the row data.
	DataOffset uint32 // byte offset 8-11
	// EntrySize is the stride of one record in bytes.
	EntrySize uint32 // byte offset 12-15
}

// Parse parses the header from a byte slice of exactly HeaderSize
// bytes, in the byte order of the supplied engine.
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != HeaderSize {
		return errs.Truncated("header", HeaderSize, len(data))
	}

	h.EntryCount = engine.Uint32(data[entryCountOffset : entryCountOffset+4])
	h.FieldCount = engine.Uint32(data[fieldCountOffset : fieldCountOffset+4])
	h.DataOffset = engine.Uint32(data[dataOffsetOffset : dataOffsetOffset+4])
	h.EntrySize = engine.Uint32(data[entrySizeOffset : entrySizeOffset+4])

	return nil
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	engine.PutUint32(b[entryCountOffset:entryCountOffset+4], h.EntryCount)
	engine.PutUint32(b[fieldCountOffset:fieldCountOffset+4], h.FieldCount)
	engine.PutUint32(b[dataOffsetOffset:dataOffsetOffset+4], h.DataOffset)
	engine.PutUint32(b[entrySizeOffset:entrySizeOffset+4], h.EntrySize)

	return b
}

// DescriptorEnd returns the byte offset where the descriptor table
// ends. Row data begins at DataOffset, which may sit past this point
// when the file carries alignment padding.
func (h *Header) DescriptorEnd() int {
	return HeaderSize + int(h.FieldCount)*FieldEntrySize
}

// RowDataEnd returns the byte offset one past the row data block,
// which is where the string pool begins. The result is computed in
// 64-bit arithmetic: a hostile header can declare a count and stride
// whose product wraps any signed width, and a wrapped end would slip
// past a bounds check.
func (h *Header) RowDataEnd() uint64 {
	return uint64(h.DataOffset) + uint64(h.EntryCount)*uint64(h.EntrySize)
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.Truncated("header", HeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize], engine); err != nil {
		return Header{}, err
	}

	return h, nil
}
