package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcsv/endian"
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/section"
)

func bothEngines(t *testing.T, fn func(t *testing.T, engine endian.EndianEngine)) {
	t.Helper()
	t.Run("BigEndian", func(t *testing.T) { fn(t, endian.GetBigEndianEngine()) })
	t.Run("LittleEndian", func(t *testing.T) { fn(t, endian.GetLittleEndianEngine()) })
}

func TestExtractLong(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		fe := section.NewFieldEntry(1, format.TypeLong)

		record := make([]byte, 4)
		engine.PutUint32(record, 0xFFFFFFFF)

		v, err := codec.Extract(record, fe)
		require.NoError(t, err)
		i, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(-1), i)
	})
}

func TestExtractUnsignedLong(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		fe := section.NewFieldEntry(1, format.TypeUnsignedLong)

		record := make([]byte, 4)
		engine.PutUint32(record, 0x80000001)

		v, err := codec.Extract(record, fe)
		require.NoError(t, err)
		u, ok := v.Uint()
		require.True(t, ok)
		require.Equal(t, uint32(0x80000001), u)
	})
}

func TestExtractShortSignExtension(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		fe := section.NewFieldEntry(1, format.TypeShort)

		record := make([]byte, 2)
		engine.PutUint16(record, 0xFFFE)

		v, err := codec.Extract(record, fe)
		require.NoError(t, err)
		i, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(-2), i)
	})
}

func TestExtractCharSignExtension(t *testing.T) {
	codec := NewRecordCodec(endian.GetBigEndianEngine())
	fe := section.NewFieldEntry(1, format.TypeChar)

	v, err := codec.Extract([]byte{0x80}, fe)
	require.NoError(t, err)
	i, ok := v.Int()
	require.True(t, ok)
	require.Equal(t, int32(-128), i)
}

func TestExtractFloat(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		fe := section.NewFieldEntry(1, format.TypeFloat)

		record := make([]byte, 4)
		engine.PutUint32(record, 0x3F800000) // 1.0

		v, err := codec.Extract(record, fe)
		require.NoError(t, err)
		f, ok := v.Float()
		require.True(t, ok)
		require.Equal(t, float32(1.0), f)
	})
}

func TestExtractPackedField(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	codec := NewRecordCodec(engine)

	// Two packed fields sharing one 32-bit word: low 16 bits and the
	// next 8 bits.
	low := section.FieldEntry{Hash: 1, Mask: 0x0000FFFF, Offset: 0, Shift: 0, Type: format.TypeUnsignedLong}
	mid := section.FieldEntry{Hash: 2, Mask: 0x00FF0000, Offset: 0, Shift: 16, Type: format.TypeUnsignedLong}

	record := make([]byte, 4)
	engine.PutUint32(record, 0x00AB1234)

	v, err := codec.Extract(record, low)
	require.NoError(t, err)
	u, _ := v.Uint()
	require.Equal(t, uint32(0x1234), u)

	v, err = codec.Extract(record, mid)
	require.NoError(t, err)
	u, _ = v.Uint()
	require.Equal(t, uint32(0xAB), u)
}

func TestInjectPreservesSharedWord(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		low := section.FieldEntry{Hash: 1, Mask: 0x0000FFFF, Offset: 0, Shift: 0, Type: format.TypeUnsignedLong}
		high := section.FieldEntry{Hash: 2, Mask: 0xFFFF0000, Offset: 0, Shift: 16, Type: format.TypeUnsignedLong}

		record := make([]byte, 4)
		require.NoError(t, codec.Inject(record, low, 0x1234))
		require.NoError(t, codec.Inject(record, high, 0xABCD))

		// Writing one packed field must not disturb the other.
		v, err := codec.Extract(record, low)
		require.NoError(t, err)
		u, _ := v.Uint()
		require.Equal(t, uint32(0x1234), u)

		v, err = codec.Extract(record, high)
		require.NoError(t, err)
		u, _ = v.Uint()
		require.Equal(t, uint32(0xABCD), u)

		// Overwrite low; high still intact.
		require.NoError(t, codec.Inject(record, low, 0x5678))
		v, err = codec.Extract(record, high)
		require.NoError(t, err)
		u, _ = v.Uint()
		require.Equal(t, uint32(0xABCD), u)
	})
}

func TestInjectExtractRoundTrip(t *testing.T) {
	bothEngines(t, func(t *testing.T, engine endian.EndianEngine) {
		codec := NewRecordCodec(engine)
		record := make([]byte, 16)

		long := section.NewFieldEntry(1, format.TypeLong)
		long.Offset = 0
		short := section.NewFieldEntry(2, format.TypeShort)
		short.Offset = 4
		char := section.NewFieldEntry(3, format.TypeChar)
		char.Offset = 6
		float := section.NewFieldEntry(4, format.TypeFloat)
		float.Offset = 8

		require.NoError(t, codec.Inject(record, long, uint32(0xFFFFFF85))) // -123
		require.NoError(t, codec.Inject(record, short, uint32(0xFFFF)))   // -1
		require.NoError(t, codec.Inject(record, char, uint32(0x7F)))      // 127
		fbits, ok := format.TypeFloat.RawBits(format.FloatValue(3.5))
		require.True(t, ok)
		require.NoError(t, codec.Inject(record, float, fbits))

		v, _ := codec.Extract(record, long)
		i, _ := v.Int()
		require.Equal(t, int32(-123), i)

		v, _ = codec.Extract(record, short)
		i, _ = v.Int()
		require.Equal(t, int32(-1), i)

		v, _ = codec.Extract(record, char)
		i, _ = v.Int()
		require.Equal(t, int32(127), i)

		v, _ = codec.Extract(record, float)
		f, _ := v.Float()
		require.Equal(t, float32(3.5), f)
	})
}

func TestInlineString(t *testing.T) {
	codec := NewRecordCodec(endian.GetBigEndianEngine())
	fe := section.NewFieldEntry(1, format.TypeString)
	record := make([]byte, 32)

	require.NoError(t, codec.InjectInline(record, fe, []byte("Mario")))

	raw, err := codec.ExtractInline(record, fe)
	require.NoError(t, err)
	require.Equal(t, []byte("Mario"), raw)

	t.Run("Too long", func(t *testing.T) {
		long := make([]byte, 32)
		for i := range long {
			long[i] = 'a'
		}
		err := codec.InjectInline(record, fe, long)
		require.ErrorIs(t, err, errs.ErrEncoding)
	})

	t.Run("Unterminated reads whole field", func(t *testing.T) {
		full := make([]byte, 32)
		for i := range full {
			full[i] = 'x'
		}
		copy(record, full)
		raw, err := codec.ExtractInline(record, fe)
		require.NoError(t, err)
		require.Len(t, raw, 32)
	})
}

func TestExtractOutOfBounds(t *testing.T) {
	codec := NewRecordCodec(endian.GetBigEndianEngine())
	fe := section.NewFieldEntry(1, format.TypeLong)
	fe.Offset = 2

	_, err := codec.Extract(make([]byte, 4), fe)
	require.ErrorIs(t, err, errs.ErrLayout)

	err = codec.Inject(make([]byte, 4), fe, 0)
	require.ErrorIs(t, err, errs.ErrLayout)
}
