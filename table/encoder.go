package table

import (
	"fmt"
	"sort"

	"github.com/arloliu/bcsv/encoding"
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/internal/pool"
	"github.com/arloliu/bcsv/section"
)

// Encode serializes a table to file bytes.
//
// With opts.LosslessLayout set and a frozen layout the captured
// stride, per-field offsets and data offset are reused, so a table
// decoded from a file and encoded unchanged reproduces that file's
// structure byte for byte. Otherwise a canonical layout is computed:
// fields are ordered by type rank, offsets packed accordingly and
// the row data placed directly after the descriptors.
//
// Strings are interned in record-major, field-order traversal, with
// repeated values sharing one pool entry. The output is padded to a
// 32-byte multiple with opts.PadByte.
func Encode(t *Table, opts Options) ([]byte, error) {
	fields, stride, dataOffset, err := encodeLayout(t.layout, opts.LosslessLayout)
	if err != nil {
		return nil, err
	}

	hdr := section.Header{
		EntryCount: uint32(t.Len()), //nolint:gosec
		FieldCount: uint32(len(fields)),
		DataOffset: dataOffset,
		EntrySize:  stride,
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.Write(hdr.Bytes(opts.Engine))
	for i := range fields {
		buf.Write(fields[i].Entry.Bytes(opts.Engine))
	}
	if gap := int(dataOffset) - buf.Len(); gap > 0 {
		buf.ExtendZero(gap)
	}

	rows := buf.ExtendZero(t.Len() * int(stride))
	codec := encoding.NewRecordCodec(opts.Engine)
	strings := encoding.NewPoolBuilder(opts.Encoding)
	defer strings.Release()

	for r, rec := range t.records {
		row := rows[r*int(stride) : (r+1)*int(stride)]
		for i := range fields {
			colIdx := t.layout.index[fields[i].Entry.Hash]
			if err := encodeCell(codec, strings, row, fields[i].Entry, rec.values[colIdx]); err != nil {
				return nil, fmt.Errorf("record %d field %s: %w", r, fields[i].Name, err)
			}
		}
	}

	buf.Write(strings.Bytes())
	if tail := buf.Len() % section.FileAlignment; tail != 0 {
		for n := section.FileAlignment - tail; n > 0; n-- {
			buf.WriteByte(opts.PadByte)
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// encodeLayout picks the field set and byte layout for an encode.
// In lossless mode the frozen layout is used as captured. Otherwise
// the fields are re-sorted by canonical type rank and fresh offsets
// are computed.
func encodeLayout(l *Layout, lossless bool) ([]Field, uint32, uint32, error) {
	if lossless && l.frozen {
		if err := encoding.ValidateLayout(l.entries(), l.stride); err != nil {
			return nil, 0, 0, err
		}

		return l.fields, l.stride, l.dataOffset, nil
	}

	fields := make([]Field, len(l.fields))
	copy(fields, l.fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Entry.Type.Order() < fields[j].Entry.Type.Order()
	})

	entries := make([]section.FieldEntry, len(fields))
	for i := range fields {
		entries[i] = fields[i].Entry
	}
	stride := encoding.ComputeOffsets(entries)
	for i := range fields {
		fields[i].Entry = entries[i]
	}

	dataOffset := uint32(section.HeaderSize + len(fields)*section.FieldEntrySize) //nolint:gosec

	return fields, stride, dataOffset, nil
}

func encodeCell(codec encoding.RecordCodec, strings *encoding.PoolBuilder, row []byte, fe section.FieldEntry, v format.Value) error {
	switch fe.Type {
	case format.TypeString:
		s, ok := v.Str()
		if !ok {
			return errs.ErrTypeMismatch
		}
		encoded, err := encoding.EncodeText(s, strings.Encoding())
		if err != nil {
			return err
		}

		return codec.InjectInline(row, fe, encoded)
	case format.TypeStringOffset:
		s, ok := v.Str()
		if !ok {
			return errs.ErrTypeMismatch
		}
		off, err := strings.Intern(s)
		if err != nil {
			return err
		}

		return codec.Inject(row, fe, off)
	default:
		raw, ok := fe.Type.RawBits(v)
		if !ok {
			return errs.ErrTypeMismatch
		}

		return codec.Inject(row, fe, raw)
	}
}
