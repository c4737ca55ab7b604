package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueVariants(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v := IntValue(-42)
		require.Equal(t, KindInt, v.Kind())
		i, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(-42), i)
		_, ok = v.Float()
		require.False(t, ok)
		_, ok = v.Str()
		require.False(t, ok)
	})

	t.Run("Uint", func(t *testing.T) {
		v := UintValue(0xFFFFFFFF)
		u, ok := v.Uint()
		require.True(t, ok)
		require.Equal(t, uint32(0xFFFFFFFF), u)
		// The same bits are visible through the signed accessor.
		i, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(-1), i)
	})

	t.Run("Float", func(t *testing.T) {
		v := FloatValue(1.25)
		f, ok := v.Float()
		require.True(t, ok)
		require.Equal(t, float32(1.25), f)
		_, ok = v.Int()
		require.False(t, ok)
	})

	t.Run("String", func(t *testing.T) {
		v := StringValue("Mario")
		s, ok := v.Str()
		require.True(t, ok)
		require.Equal(t, "Mario", s)
	})

	t.Run("Zero value is Int(0)", func(t *testing.T) {
		var v Value
		i, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(0), i)
	})
}

func TestValueEqual(t *testing.T) {
	require.True(t, IntValue(7).Equal(IntValue(7)))
	require.False(t, IntValue(7).Equal(IntValue(8)))
	require.True(t, StringValue("a").Equal(StringValue("a")))
	require.False(t, StringValue("a").Equal(IntValue(0)))
	require.False(t, FloatValue(1).Equal(IntValue(1)))

	// Signed and unsigned with identical bits are the same payload.
	require.True(t, IntValue(-1).Equal(UintValue(0xFFFFFFFF)))
}

func TestValueText(t *testing.T) {
	require.Equal(t, "-5", IntValue(-5).Text())
	require.Equal(t, "4294967295", UintValue(0xFFFFFFFF).Text())
	require.Equal(t, "Mario", StringValue("Mario").Text())
	require.Equal(t, "1.5", FloatValue(1.5).Text())
	// Shortest round-trip form, not a fixed precision.
	require.Equal(t, "0.1", FloatValue(0.1).Text())
}
