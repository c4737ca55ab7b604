package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/lookup"
)

func newStatsTable(t *testing.T) *Table {
	t.Helper()

	tbl := New()
	require.NoError(t, tbl.AddField("HP", format.TypeLong))
	require.NoError(t, tbl.AddField("Name", format.TypeStringOffset))

	return tbl
}

func TestTableFields(t *testing.T) {
	tbl := newStatsTable(t)

	t.Run("add resolves hash from name", func(t *testing.T) {
		require.Equal(t, 2, tbl.NumFields())
		i := tbl.Layout().IndexByHash(lookup.Calc("HP"))
		require.Equal(t, 0, i)
		require.Equal(t, "HP", tbl.Layout().Field(0).Name)
		require.True(t, tbl.Layout().Field(0).Resolved)
	})

	t.Run("duplicate field rejected", func(t *testing.T) {
		err := tbl.AddField("HP", format.TypeLong)
		require.ErrorIs(t, err, errs.ErrFieldExists)
	})

	t.Run("fallback name addresses hash field", func(t *testing.T) {
		fresh := New()
		require.NoError(t, fresh.AddFieldHash(0xDEADBEEF, format.TypeFloat))
		require.Equal(t, "[DEADBEEF]", fresh.Layout().Field(0).Name)
		require.False(t, fresh.Layout().Field(0).Resolved)
		require.Equal(t, 0, fresh.Layout().IndexByName("[DEADBEEF]"))
	})

	t.Run("drop field removes column and values", func(t *testing.T) {
		fresh := newStatsTable(t)
		rec := fresh.AppendRecord()
		require.NoError(t, rec.Set("HP", format.IntValue(42)))
		require.NoError(t, rec.Set("Name", format.StringValue("Mario")))

		require.NoError(t, fresh.DropField("HP"))
		require.Equal(t, 1, fresh.NumFields())
		_, ok := rec.Get("HP")
		require.False(t, ok)
		name, ok := rec.Str("Name")
		require.True(t, ok)
		require.Equal(t, "Mario", name)
	})

	t.Run("drop unknown field", func(t *testing.T) {
		err := tbl.DropField("NoSuchField")
		require.ErrorIs(t, err, errs.ErrFieldNotFound)
	})
}

func TestTableRecords(t *testing.T) {
	tbl := newStatsTable(t)

	t.Run("append starts with defaults", func(t *testing.T) {
		rec := tbl.AppendRecord()
		hp, ok := rec.Int("HP")
		require.True(t, ok)
		require.Equal(t, int32(0), hp)
		name, ok := rec.Str("Name")
		require.True(t, ok)
		require.Equal(t, "", name)
	})

	t.Run("set and get by name and hash", func(t *testing.T) {
		rec := tbl.Record(0)
		require.NoError(t, rec.Set("HP", format.IntValue(100)))
		require.NoError(t, rec.SetByHash(lookup.Calc("Name"), format.StringValue("Mario")))

		v, ok := rec.GetByHash(lookup.Calc("HP"))
		require.True(t, ok)
		got, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, int32(100), got)
	})

	t.Run("kind mismatch rejected", func(t *testing.T) {
		rec := tbl.Record(0)
		err := rec.Set("HP", format.StringValue("oops"))
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		err = rec.Set("Name", format.IntValue(1))
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("remove record", func(t *testing.T) {
		n := tbl.Len()
		require.NoError(t, tbl.RemoveRecord(0))
		require.Equal(t, n-1, tbl.Len())
		require.ErrorIs(t, tbl.RemoveRecord(99), errs.ErrIndexOutOfRange)
	})
}

func TestTableIteration(t *testing.T) {
	tbl := newStatsTable(t)
	for i, name := range []string{"Mario", "Luigi", "Peach"} {
		rec := tbl.AppendRecord()
		require.NoError(t, rec.Set("HP", format.IntValue(int32(i*10))))
		require.NoError(t, rec.Set("Name", format.StringValue(name)))
	}

	collect := func() []string {
		var out []string
		for rec := range tbl.Records() {
			name, _ := rec.Str("Name")
			out = append(out, name)
		}

		return out
	}

	t.Run("iteration is restartable", func(t *testing.T) {
		first := collect()
		second := collect()
		require.Equal(t, []string{"Mario", "Luigi", "Peach"}, first)
		require.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for range tbl.Records() {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
	})

	t.Run("stable sort", func(t *testing.T) {
		tbl.SortBy(func(a, b *Record) bool {
			ha, _ := a.Int("HP")
			hb, _ := b.Int("HP")

			return ha > hb
		})
		require.Equal(t, []string{"Peach", "Luigi", "Mario"}, collect())
	})
}

func TestLayoutFreeze(t *testing.T) {
	l := NewLayout()
	l.frozen = true

	err := l.addField(Field{})
	require.ErrorIs(t, err, errs.ErrLayoutFrozen)

	_, err = l.dropField(0)
	require.ErrorIs(t, err, errs.ErrLayoutFrozen)

	l.Thaw()
	require.False(t, l.Frozen())
	require.NoError(t, l.addField(Field{Name: "HP"}))
}
