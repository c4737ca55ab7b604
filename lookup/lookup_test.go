package lookup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcsv/errs"
)

func TestCalc(t *testing.T) {
	// Known vectors from the Super Mario Galaxy hash corpus.
	require.Equal(t, uint32(0xED08B591), Calc("ScenarioNo"))
	require.Equal(t, uint32(0x3666C077), Calc("ZoneName"))
	require.Equal(t, uint32(0), Calc(""))
}

func TestCalcDeterministic(t *testing.T) {
	for _, name := range []string{"HP", "Name", "pos_x", "カメラ"} {
		require.Equal(t, Calc(name), Calc(name))
	}
}

func TestCalcSignExtension(t *testing.T) {
	// High-bit bytes fold as negative values: 0x80 contributes
	// 0xFFFFFF80, not 0x80.
	require.Equal(t, uint32(0xFFFFFF80), Calc("\x80"))
	require.NotEqual(t, uint32(0x80), Calc("\x80"))
}

func TestFallbackName(t *testing.T) {
	require.Equal(t, "[DEADBEEF]", FallbackName(0xDEADBEEF))
	require.Equal(t, "[00000001]", FallbackName(1))

	hash, ok := ParseFallbackName("[DEADBEEF]")
	require.True(t, ok)
	require.Equal(t, uint32(0xDEADBEEF), hash)

	for _, bad := range []string{"", "DEADBEEF", "[DEADBEEF", "[nothex00]", "[]"} {
		_, ok := ParseFallbackName(bad)
		require.False(t, ok, "%q should not parse", bad)
	}
}

func TestTableResolve(t *testing.T) {
	table, err := FromNames([]string{"ScenarioNo", "ZoneName"})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	name, ok := table.Resolve(Calc("ZoneName"))
	require.True(t, ok)
	require.Equal(t, "ZoneName", name)

	_, ok = table.Resolve(0xDEADBEEF)
	require.False(t, ok)
	require.Equal(t, "[DEADBEEF]", table.Name(0xDEADBEEF))
	require.Equal(t, "ScenarioNo", table.Name(Calc("ScenarioNo")))
}

func TestTableDuplicateName(t *testing.T) {
	table := NewTable()
	h1, err := table.Add("HP")
	require.NoError(t, err)
	h2, err := table.Add("HP")
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Equal(t, 1, table.Len())
}

func TestTableCollisionSurfaced(t *testing.T) {
	// "Aa" and "BB" collide under h*31+b, the classic pair for
	// 31-multiplier hashes.
	require.Equal(t, Calc("Aa"), Calc("BB"))

	_, err := FromNames([]string{"Aa", "BB"})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrHashCollision)

	var collision *errs.HashCollisionError
	require.ErrorAs(t, err, &collision)
	require.Equal(t, Calc("Aa"), collision.Hash)
	require.ElementsMatch(t, []string{"Aa", "BB"}, collision.Names)
}

func TestFromReader(t *testing.T) {
	corpus := strings.NewReader(`
# known field names
ScenarioNo
ZoneName

  PowerStarId
`)
	table, err := FromReader(corpus)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	require.Equal(t, "PowerStarId", table.Name(Calc("PowerStarId")))
}
