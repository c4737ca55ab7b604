package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/section"
)

func TestValidateLayout(t *testing.T) {
	t.Run("Valid disjoint fields", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0xFFFFFFFF, Offset: 0, Type: format.TypeLong},
			{Hash: 2, Mask: 0x0000FFFF, Offset: 4, Type: format.TypeShort},
			{Hash: 3, Mask: 0x000000FF, Offset: 6, Type: format.TypeChar},
		}
		require.NoError(t, ValidateLayout(entries, 8))
	})

	t.Run("Valid packed word", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0x0000FFFF, Offset: 0, Shift: 0, Type: format.TypeUnsignedLong},
			{Hash: 2, Mask: 0xFFFF0000, Offset: 0, Shift: 16, Type: format.TypeUnsignedLong},
		}
		require.NoError(t, ValidateLayout(entries, 4))
	})

	t.Run("Offset exceeds stride", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0xFFFFFFFF, Offset: 6, Type: format.TypeLong},
		}
		err := ValidateLayout(entries, 8)
		require.ErrorIs(t, err, errs.ErrLayout)
	})

	t.Run("Shift exceeds word", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0x0000FFFF, Offset: 0, Shift: 16, Type: format.TypeShort},
		}
		err := ValidateLayout(entries, 4)
		require.ErrorIs(t, err, errs.ErrLayout)
	})

	t.Run("Overlapping masks in shared word", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0x0000FFFF, Offset: 0, Shift: 0, Type: format.TypeUnsignedLong},
			{Hash: 2, Mask: 0x00FFFF00, Offset: 0, Shift: 8, Type: format.TypeUnsignedLong},
		}
		err := ValidateLayout(entries, 4)
		require.ErrorIs(t, err, errs.ErrLayout)
	})

	t.Run("Partial byte-range overlap", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0xFFFFFFFF, Offset: 0, Type: format.TypeLong},
			{Hash: 2, Mask: 0x0000FFFF, Offset: 2, Type: format.TypeShort},
		}
		err := ValidateLayout(entries, 8)
		require.ErrorIs(t, err, errs.ErrLayout)
	})

	t.Run("Float cannot share a word", func(t *testing.T) {
		entries := []section.FieldEntry{
			{Hash: 1, Mask: 0xFFFFFFFF, Offset: 0, Type: format.TypeFloat},
			{Hash: 2, Mask: 0x000000FF, Offset: 0, Type: format.TypeUnsignedLong},
		}
		err := ValidateLayout(entries, 4)
		require.ErrorIs(t, err, errs.ErrLayout)
	})

	t.Run("Empty layout", func(t *testing.T) {
		require.NoError(t, ValidateLayout(nil, 0))
	})
}

func TestComputeOffsets(t *testing.T) {
	entries := []section.FieldEntry{
		section.NewFieldEntry(1, format.TypeChar),
		section.NewFieldEntry(2, format.TypeLong),
		section.NewFieldEntry(3, format.TypeStringOffset),
		section.NewFieldEntry(4, format.TypeShort),
		section.NewFieldEntry(5, format.TypeFloat),
	}

	stride := ComputeOffsets(entries)

	// Canonical packing: Float(0) Long(4) Short(8) Char(10) StringOffset(11),
	// stride rounded up from 15 to 16.
	require.Equal(t, uint16(10), entries[0].Offset) // Char
	require.Equal(t, uint16(4), entries[1].Offset)  // Long
	require.Equal(t, uint16(11), entries[2].Offset) // StringOffset
	require.Equal(t, uint16(8), entries[3].Offset)  // Short
	require.Equal(t, uint16(0), entries[4].Offset)  // Float
	require.Equal(t, uint32(16), stride)

	require.NoError(t, ValidateLayout(entries, stride))
}

func TestComputeOffsetsStable(t *testing.T) {
	build := func() []section.FieldEntry {
		return []section.FieldEntry{
			section.NewFieldEntry(10, format.TypeLong),
			section.NewFieldEntry(20, format.TypeLong),
			section.NewFieldEntry(30, format.TypeShort),
		}
	}

	a, b := build(), build()
	require.Equal(t, ComputeOffsets(a), ComputeOffsets(b))
	require.Equal(t, a, b)

	// Same-rank fields keep their slice order.
	require.Less(t, a[0].Offset, a[1].Offset)
}
