package table

import (
	"fmt"
	"math"

	"github.com/arloliu/bcsv/encoding"
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/lookup"
	"github.com/arloliu/bcsv/section"
)

// Decode materializes a binary table from file bytes.
//
// The whole file is decoded eagerly in this order: header, field
// descriptors, layout validation, name resolution, row data, string
// pool. Every region is bounds-checked against the header before its
// bytes are touched, so a file advertising more records than the
// buffer holds fails with a TruncatedError naming the row data region
// rather than decoding a prefix.
//
// names resolves field hashes to names and may be nil, in which case
// every field keeps its hex fallback name. The returned table is
// independent of data and carries the source byte layout, so encoding
// it back with LosslessLayout reproduces data's structure exactly.
func Decode(data []byte, names *lookup.Table, opts Options) (*Table, error) {
	hdr, err := section.ParseHeader(data, opts.Engine)
	if err != nil {
		return nil, err
	}

	entries, err := section.ParseFieldEntries(data, int(hdr.FieldCount), opts.Engine)
	if err != nil {
		return nil, err
	}

	if hdr.DataOffset < uint32(hdr.DescriptorEnd()) {
		return nil, errs.Layout(0, "data offset %d overlaps field descriptors ending at %d",
			hdr.DataOffset, hdr.DescriptorEnd())
	}
	rowDataEnd := hdr.RowDataEnd()
	if rowDataEnd > uint64(len(data)) {
		return nil, errs.Truncated("row data", saturateInt(rowDataEnd), len(data))
	}

	if hdr.EntryCount > 0 {
		if err := encoding.ValidateLayout(entries, hdr.EntrySize); err != nil {
			return nil, err
		}
	}

	layout := &Layout{
		index:      make(map[uint32]int, len(entries)),
		stride:     hdr.EntrySize,
		dataOffset: hdr.DataOffset,
		frozen:     true,
	}
	for _, fe := range entries {
		name, resolved := resolveName(names, fe.Hash)
		if !resolved && opts.UnknownFields == DropUnknownFields {
			continue
		}
		if _, ok := layout.index[fe.Hash]; ok {
			return nil, errs.Layout(fe.Hash, "duplicate field hash")
		}

		layout.index[fe.Hash] = len(layout.fields)
		layout.fields = append(layout.fields, Field{
			Entry:    fe,
			Name:     name,
			Resolved: resolved,
			Default:  fe.Type.DefaultValue(),
		})
	}

	codec := encoding.NewRecordCodec(opts.Engine)
	pool := data[rowDataEnd:]

	t := &Table{layout: layout, records: make([]*Record, 0, hdr.EntryCount)}
	for r := 0; r < int(hdr.EntryCount); r++ {
		start := int(hdr.DataOffset) + r*int(hdr.EntrySize)
		row := data[start : start+int(hdr.EntrySize)]

		rec := &Record{layout: layout, values: make([]format.Value, len(layout.fields))}
		for i := range layout.fields {
			v, err := decodeCell(codec, row, pool, layout.fields[i].Entry, opts.Encoding)
			if err != nil {
				return nil, fmt.Errorf("record %d field %s: %w", r, layout.fields[i].Name, err)
			}
			rec.values[i] = v
		}
		t.records = append(t.records, rec)
	}

	return t, nil
}

func decodeCell(codec encoding.RecordCodec, row, pool []byte, fe section.FieldEntry, enc format.StringEncoding) (format.Value, error) {
	switch fe.Type {
	case format.TypeString:
		raw, err := codec.ExtractInline(row, fe)
		if err != nil {
			return format.Value{}, err
		}
		s, err := encoding.DecodeText(raw, enc)
		if err != nil {
			return format.Value{}, err
		}

		return format.StringValue(s), nil
	case format.TypeStringOffset:
		off, err := codec.ExtractRaw(row, fe)
		if err != nil {
			return format.Value{}, err
		}
		s, err := encoding.DecodePoolString(pool, off, enc)
		if err != nil {
			return format.Value{}, err
		}

		return format.StringValue(s), nil
	default:
		return codec.Extract(row, fe)
	}
}

// saturateInt clamps a 64-bit region size to the int range for error
// reporting. Only reachable for headers declaring regions beyond any
// real buffer.
func saturateInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}

	return int(v)
}

func resolveName(names *lookup.Table, hash uint32) (string, bool) {
	if names != nil {
		if name, ok := names.Resolve(hash); ok {
			return name, true
		}
	}

	return lookup.FallbackName(hash), false
}
