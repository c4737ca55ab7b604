package table

import (
	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/lookup"
	"github.com/arloliu/bcsv/section"
)

// Field is one column of a table: the on-disk descriptor plus the
// resolved name and the default value used for new records.
type Field struct {
	Entry section.FieldEntry
	// Name is the resolved field name, or the hex fallback form when
	// the hash was not found in the corpus.
	Name string
	// Resolved reports whether Name came from the corpus rather than
	// the fallback form.
	Resolved bool
	// Default is the value new records start with in this column.
	Default format.Value
}

// Layout is the ordered set of fields of a table. A layout decoded
// from a file is frozen: it remembers the exact stride, per-field
// offsets and data offset of the source bytes so an encode can
// reproduce them. A frozen layout rejects field addition and removal
// until Thaw releases the captured byte layout.
type Layout struct {
	fields []Field
	index  map[uint32]int

	stride     uint32
	dataOffset uint32
	frozen     bool
}

// NewLayout returns an empty unfrozen layout.
func NewLayout() *Layout {
	return &Layout{index: make(map[uint32]int)}
}

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// Field returns the field at index i.
func (l *Layout) Field(i int) *Field { return &l.fields[i] }

// Fields returns the fields in column order. The slice is owned by
// the layout and must not be modified.
func (l *Layout) Fields() []Field { return l.fields }

// IndexByHash returns the column index of the field with the given
// hash, or -1.
func (l *Layout) IndexByHash(hash uint32) int {
	if i, ok := l.index[hash]; ok {
		return i
	}

	return -1
}

// IndexByName returns the column index of the named field, or -1.
// The name is hashed with the standard name hash, so a hex fallback
// name addresses the field it denotes.
func (l *Layout) IndexByName(name string) int {
	if hash, ok := lookup.ParseFallbackName(name); ok {
		return l.IndexByHash(hash)
	}

	return l.IndexByHash(lookup.Calc(name))
}

// Frozen reports whether the layout carries a captured byte layout.
func (l *Layout) Frozen() bool { return l.frozen }

// Thaw discards the captured byte layout. Field offsets and the
// stride are recomputed at the next encode, and fields may be added
// or removed again.
func (l *Layout) Thaw() {
	l.frozen = false
	l.stride = 0
	l.dataOffset = 0
}

func (l *Layout) addField(f Field) error {
	if l.frozen {
		return errs.ErrLayoutFrozen
	}
	if _, ok := l.index[f.Entry.Hash]; ok {
		return errs.ErrFieldExists
	}

	l.index[f.Entry.Hash] = len(l.fields)
	l.fields = append(l.fields, f)

	return nil
}

func (l *Layout) dropField(hash uint32) (int, error) {
	if l.frozen {
		return -1, errs.ErrLayoutFrozen
	}
	i, ok := l.index[hash]
	if !ok {
		return -1, errs.ErrFieldNotFound
	}

	l.fields = append(l.fields[:i], l.fields[i+1:]...)
	delete(l.index, hash)
	for j := i; j < len(l.fields); j++ {
		l.index[l.fields[j].Entry.Hash] = j
	}

	return i, nil
}

// entries returns the raw field descriptors in column order.
func (l *Layout) entries() []section.FieldEntry {
	out := make([]section.FieldEntry, len(l.fields))
	for i := range l.fields {
		out[i] = l.fields[i].Entry
	}

	return out
}
