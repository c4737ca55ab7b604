// Package bcsv reads and writes the BCSV/JMap binary table format
// used by GameCube, Wii and Switch era titles.
//
// A BCSV file is a fixed-stride row table: a small header, a list of
// hash-identified field descriptors, a block of packed records and a
// null-terminated string pool. Field names are not stored; each field
// carries only a 32-bit hash of its name, so reading meaningful
// column names requires a corpus of candidate names hashed up front.
//
// # Basic Usage
//
// Decoding a table with a name corpus:
//
//	import "github.com/arloliu/bcsv"
//
//	names, _ := bcsv.NamesFromReader(corpusFile)
//	tbl, err := bcsv.Decode(data, names)
//	if err != nil {
//	    return err
//	}
//	for rec := range tbl.Records() {
//	    hp, _ := rec.Int("HP")
//	    name, _ := rec.Str("Name")
//	    fmt.Println(name, hp)
//	}
//
// Building and encoding a new table:
//
//	tbl := bcsv.New()
//	tbl.AddField("HP", format.TypeLong)
//	tbl.AddField("Name", format.TypeStringOffset)
//	rec := tbl.AppendRecord()
//	rec.Set("HP", format.IntValue(100))
//	rec.Set("Name", format.StringValue("Mario"))
//	data, err := bcsv.Encode(tbl)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// table package, covering the common big-endian Shift-JIS variant.
// For other on-disk variants pass table options explicitly, or use
// the profile package's named variant presets.
package bcsv

import (
	"io"

	"github.com/arloliu/bcsv/lookup"
	"github.com/arloliu/bcsv/table"
)

// New creates an empty table with no fields and no records.
func New() *table.Table {
	return table.New()
}

// Decode materializes a table from file bytes using the default
// big-endian Shift-JIS configuration. names may be nil, leaving every
// field with its hex fallback name.
//
// Additional options override the defaults:
//
//	tbl, err := bcsv.Decode(data, names,
//	    table.WithLittleEndian(),
//	    table.WithEncoding(format.EncodingUTF8),
//	)
func Decode(data []byte, names *lookup.Table, opts ...table.Option) (*table.Table, error) {
	return table.Decode(data, names, table.NewOptions(opts...))
}

// Encode serializes a table to file bytes using the default
// big-endian Shift-JIS configuration and a canonical field layout.
//
// To reproduce a decoded file byte for byte, pass
// table.WithLosslessLayout(true).
func Encode(t *table.Table, opts ...table.Option) ([]byte, error) {
	return table.Encode(t, table.NewOptions(opts...))
}

// Hash computes the field name hash of name. Exposed so callers can
// address fields absent from any name corpus.
func Hash(name string) uint32 {
	return lookup.Calc(name)
}

// NamesFromReader builds a name corpus from newline-separated names.
// Blank lines and '#' comment lines are skipped. Distinct names
// folding to one hash fail with a HashCollisionError.
func NamesFromReader(r io.Reader) (*lookup.Table, error) {
	return lookup.FromReader(r)
}

// Names builds a name corpus from a name list.
func Names(names []string) (*lookup.Table, error) {
	return lookup.FromNames(names)
}
