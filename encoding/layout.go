package encoding

import (
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/section"
)

// ValidateLayout checks the layout invariants of a descriptor table
// against the record stride:
//
//   - every field's storage word lies inside the stride;
//   - shifts stay within the storage word;
//   - fields whose byte ranges overlap must share the exact storage
//     word and carve it up with disjoint masks.
//
// Violations fail with a LayoutError naming the offending field.
func ValidateLayout(entries []section.FieldEntry, stride uint32) error {
	for i := range entries {
		fe := &entries[i]
		size := fe.Type.Size()
		end := int(fe.Offset) + size

		if end > int(stride) {
			return errs.Layout(fe.Hash, "offset %d + size %d exceeds stride %d", fe.Offset, size, stride)
		}
		if int(fe.Shift) >= size*8 {
			return errs.Layout(fe.Hash, "shift %d exceeds %d-bit storage word", fe.Shift, size*8)
		}
	}

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if err := checkOverlap(&entries[i], &entries[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// effectiveMask is the bits a field claims inside its storage word.
// Masked integer types claim their descriptor mask; Float, StringOffset
// and inline strings claim the whole word.
func effectiveMask(fe *section.FieldEntry) uint32 {
	switch fe.Type {
	case format.TypeLong, format.TypeUnsignedLong, format.TypeShort, format.TypeChar:
		return fe.Mask
	default:
		return 0xFFFFFFFF
	}
}

func checkOverlap(a, b *section.FieldEntry) error {
	aEnd := int(a.Offset) + a.Type.Size()
	bEnd := int(b.Offset) + b.Type.Size()
	if int(a.Offset) >= bEnd || int(b.Offset) >= aEnd {
		return nil // disjoint byte ranges
	}

	// Overlapping fields must pack into the same storage word.
	if a.Offset != b.Offset || a.Type.Size() != b.Type.Size() {
		return errs.Layout(b.Hash, "overlaps field %08X without sharing its storage word", a.Hash)
	}
	if effectiveMask(a)&effectiveMask(b) != 0 {
		return errs.Layout(b.Hash, "mask %08X overlaps mask %08X of field %08X",
			effectiveMask(b), effectiveMask(a), a.Hash)
	}

	return nil
}

// ComputeOffsets assigns fresh byte offsets to a descriptor table in
// canonical type order and returns the resulting record stride,
// rounded up to the record alignment. Entries are updated in place;
// their relative order within the slice is preserved.
func ComputeOffsets(entries []section.FieldEntry) uint32 {
	// Stable selection by type order without reordering the slice:
	// assign offsets rank by rank.
	var offset uint16
	for rank := 0; rank <= 6; rank++ {
		for i := range entries {
			if entries[i].Type.Order() != rank {
				continue
			}
			entries[i].Offset = offset
			offset += uint16(entries[i].Type.Size()) //nolint:gosec
		}
	}

	stride := (uint32(offset) + section.RecordAlignment - 1) &^ (section.RecordAlignment - 1)

	return stride
}
