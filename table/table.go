// Package table provides the in-memory model of a binary table and
// the codec turning it into file bytes and back.
//
// A Table owns a Layout describing its columns and a list of records
// holding one value per column. Decoding materializes the whole file
// eagerly, so a decoded table is independent of the source buffer.
package table

import (
	"iter"
	"sort"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/lookup"
	"github.com/arloliu/bcsv/section"
)

// Record is one row of a table. Values are stored in column order,
// parallel to the layout's field list.
type Record struct {
	layout *Layout
	values []format.Value
}

// Get returns the value of the named column. The name may be a hex
// fallback form.
func (r *Record) Get(name string) (format.Value, bool) {
	i := r.layout.IndexByName(name)
	if i < 0 {
		return format.Value{}, false
	}

	return r.values[i], true
}

// GetByHash returns the value of the column with the given hash.
func (r *Record) GetByHash(hash uint32) (format.Value, bool) {
	i := r.layout.IndexByHash(hash)
	if i < 0 {
		return format.Value{}, false
	}

	return r.values[i], true
}

// At returns the value at column index i.
func (r *Record) At(i int) format.Value { return r.values[i] }

// Set assigns the value of the named column. It fails with
// ErrFieldNotFound for an unknown name and ErrTypeMismatch when the
// value kind is not compatible with the field type.
func (r *Record) Set(name string, v format.Value) error {
	i := r.layout.IndexByName(name)
	if i < 0 {
		return errs.ErrFieldNotFound
	}

	return r.setAt(i, v)
}

// SetByHash assigns the value of the column with the given hash.
func (r *Record) SetByHash(hash uint32, v format.Value) error {
	i := r.layout.IndexByHash(hash)
	if i < 0 {
		return errs.ErrFieldNotFound
	}

	return r.setAt(i, v)
}

func (r *Record) setAt(i int, v format.Value) error {
	if !r.layout.fields[i].Entry.Type.Compatible(v) {
		return errs.ErrTypeMismatch
	}
	r.values[i] = v

	return nil
}

// Int returns the named column as a signed integer. It reports false
// when the column is absent or does not hold an integer.
func (r *Record) Int(name string) (int32, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}

	return v.Int()
}

// Float returns the named column as a float.
func (r *Record) Float(name string) (float32, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}

	return v.Float()
}

// Str returns the named column as a string.
func (r *Record) Str(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}

	return v.Str()
}

// Table is an ordered collection of records sharing one layout.
type Table struct {
	layout  *Layout
	records []*Record
}

// New returns an empty table with no fields and no records.
func New() *Table {
	return &Table{layout: NewLayout()}
}

// Layout returns the table's layout.
func (t *Table) Layout() *Layout { return t.layout }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// NumFields returns the number of columns.
func (t *Table) NumFields() int { return t.layout.NumFields() }

// Record returns the record at index i.
func (t *Table) Record(i int) *Record { return t.records[i] }

// Records returns an iterator over the records in order. The
// iterator is restartable and multiple iterations observe the same
// sequence as long as the table is not mutated in between.
func (t *Table) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, rec := range t.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// AppendRecord appends a new record with every column set to its
// field default and returns it.
func (t *Table) AppendRecord() *Record {
	rec := &Record{
		layout: t.layout,
		values: make([]format.Value, t.layout.NumFields()),
	}
	for i := range t.layout.fields {
		rec.values[i] = t.layout.fields[i].Default
	}
	t.records = append(t.records, rec)

	return rec
}

// RemoveRecord removes the record at index i.
func (t *Table) RemoveRecord(i int) error {
	if i < 0 || i >= len(t.records) {
		return errs.ErrIndexOutOfRange
	}
	t.records = append(t.records[:i], t.records[i+1:]...)

	return nil
}

// SortBy reorders the records by the given comparison. The sort is
// stable, so records comparing equal keep their relative order.
func (t *Table) SortBy(less func(a, b *Record) bool) {
	sort.SliceStable(t.records, func(i, j int) bool {
		return less(t.records[i], t.records[j])
	})
}

// AddField appends a column named name with the given type. The hash
// is computed from the name. Every existing record gets the default
// value of the type in the new column. It fails with ErrLayoutFrozen
// on a table decoded with a captured byte layout; call
// Layout().Thaw() first to allow schema changes.
func (t *Table) AddField(name string, typ format.FieldType) error {
	if hash, ok := lookup.ParseFallbackName(name); ok {
		return t.addField(Field{
			Entry:    section.NewFieldEntry(hash, typ),
			Name:     name,
			Default:  typ.DefaultValue(),
			Resolved: false,
		})
	}

	return t.addField(Field{
		Entry:    section.NewFieldEntry(lookup.Calc(name), typ),
		Name:     name,
		Default:  typ.DefaultValue(),
		Resolved: true,
	})
}

// AddFieldHash appends a column identified only by hash. The column
// is named by the hex fallback form.
func (t *Table) AddFieldHash(hash uint32, typ format.FieldType) error {
	return t.addField(Field{
		Entry:   section.NewFieldEntry(hash, typ),
		Name:    lookup.FallbackName(hash),
		Default: typ.DefaultValue(),
	})
}

func (t *Table) addField(f Field) error {
	if err := t.layout.addField(f); err != nil {
		return err
	}
	for _, rec := range t.records {
		rec.values = append(rec.values, f.Default)
	}

	return nil
}

// DropField removes the named column and its value from every
// record. Like AddField it is rejected while the layout is frozen.
func (t *Table) DropField(name string) error {
	i := t.layout.IndexByName(name)
	if i < 0 {
		return errs.ErrFieldNotFound
	}

	hash := t.layout.fields[i].Entry.Hash
	if _, err := t.layout.dropField(hash); err != nil {
		return err
	}
	for _, rec := range t.records {
		rec.values = append(rec.values[:i], rec.values[i+1:]...)
	}

	return nil
}
