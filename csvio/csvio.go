// Package csvio converts binary tables to and from delimited text.
//
// It works purely on the in-memory table model and never touches raw
// file bytes. Two header dialects are supported: plain headers carry
// only field names, typed headers carry name, type and default as
// delimiter-separated triples like "ScenarioNo:Int:0". Reading
// auto-detects the dialect, so a file written with either form reads
// back without configuration.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/table"
)

// DefaultHeaderDelimiter separates the parts of a typed header cell.
const DefaultHeaderDelimiter = ":"

// Options configures CSV conversion.
type Options struct {
	// TypedHeader writes name:type:default header cells instead of
	// plain names. Reading ignores this and detects the dialect.
	TypedHeader bool
	// HeaderDelimiter separates the parts of a typed header cell.
	// Empty means DefaultHeaderDelimiter. It must not occur in field
	// names or type names.
	HeaderDelimiter string
}

// DefaultOptions returns plain headers with the ':' typed delimiter.
func DefaultOptions() Options {
	return Options{HeaderDelimiter: DefaultHeaderDelimiter}
}

func (o *Options) delimiter() string {
	if o.HeaderDelimiter == "" {
		return DefaultHeaderDelimiter
	}

	return o.HeaderDelimiter
}

// Write renders a table as CSV text: one header row of field names,
// then one row per record. Integers print in decimal, floats with the
// shortest form that round-trips a float32, strings with standard CSV
// quoting.
func Write(w io.Writer, t *table.Table, opts Options) error {
	cw := csv.NewWriter(w)
	fields := t.Layout().Fields()
	delim := opts.delimiter()

	header := make([]string, len(fields))
	for i := range fields {
		if opts.TypedHeader {
			header[i] = fields[i].Name + delim + fields[i].Entry.Type.String() + delim + fields[i].Default.Text()
		} else {
			header[i] = fields[i].Name
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(fields))
	for rec := range t.Records() {
		for i := range fields {
			row[i] = rec.At(i).Text()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Read parses CSV text into a table. With a typed header each
// column's type comes from the header cell; with a plain header it is
// inferred from the literal form of the column's cells. Hex fallback
// names like "[00A7E6CB]" address fields by hash in either dialect.
// The returned table has no captured byte layout, so encoding it
// produces a canonical new-file layout.
func Read(r io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &errs.SchemaError{Column: "", Reason: "empty input"}
	}

	header := rows[0]
	data := rows[1:]

	types, names, err := headerSchema(header, data, opts.delimiter())
	if err != nil {
		return nil, err
	}

	t := table.New()
	for i := range names {
		if err := t.AddField(names[i], types[i]); err != nil {
			return nil, fmt.Errorf("column %q: %w", names[i], err)
		}
	}

	for r, row := range data {
		rec := t.AppendRecord()
		for i := range names {
			if row[i] == "" {
				continue // keep the field default
			}
			v, err := parseCell(row[i], types[i])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r+1, names[i], err)
			}
			if err := rec.Set(names[i], v); err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r+1, names[i], err)
			}
		}
	}

	return t, nil
}

// headerSchema decides the column names and types. A header is typed
// when every cell splits into exactly three parts on the delimiter
// and names a known type; anything else is a plain header resolved by
// inference.
func headerSchema(header []string, data [][]string, delim string) ([]format.FieldType, []string, error) {
	types := make([]format.FieldType, len(header))
	names := make([]string, len(header))

	typed := len(header) > 0
	for i, cell := range header {
		parts := strings.Split(cell, delim)
		if len(parts) != 3 || parts[0] == "" {
			typed = false
			break
		}
		typ, ok := format.ParseFieldTypeName(parts[1])
		if !ok {
			typed = false
			break
		}
		names[i] = parts[0]
		types[i] = typ
	}
	if typed {
		return types, names, nil
	}

	for i, name := range header {
		typ, err := inferColumn(name, i, data)
		if err != nil {
			return nil, nil, err
		}
		names[i] = name
		types[i] = typ
	}

	return types, names, nil
}

// literalForm classifies a cell's literal shape.
type literalForm uint8

const (
	formInt literalForm = iota
	formFloat
	formString
)

func classify(cell string) literalForm {
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return formInt
	}
	if _, err := strconv.ParseUint(cell, 10, 64); err == nil {
		return formInt
	}
	if _, err := strconv.ParseFloat(cell, 32); err == nil {
		return formFloat
	}

	return formString
}

// inferColumn derives a column type from its cells. The first
// non-empty cell fixes the form; later cells may widen an integer
// column to float, but any numeric/string disagreement fails. Integer
// columns become unsigned when a value exceeds the signed 32-bit
// range.
func inferColumn(name string, col int, data [][]string) (format.FieldType, error) {
	form := formInt
	seen := false
	unsigned := false

	for _, row := range data {
		cell := row[col]
		if cell == "" {
			continue
		}

		f := classify(cell)
		switch {
		case !seen:
			form = f
			seen = true
		case form == f:
		case form == formInt && f == formFloat, form == formFloat && f == formInt:
			form = formFloat
		default:
			return 0, &errs.SchemaError{
				Column: name,
				Reason: fmt.Sprintf("cell %q does not match the column's inferred form", cell),
			}
		}

		if f == formInt {
			if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
				if v > math.MaxInt32 || v < math.MinInt32 {
					unsigned = true
				}
			} else {
				unsigned = true
			}
		}
	}
	if !seen {
		return 0, &errs.SchemaError{Column: name, Reason: "no non-empty cells to infer a type from"}
	}

	switch form {
	case formFloat:
		return format.TypeFloat, nil
	case formString:
		return format.TypeStringOffset, nil
	default:
		if unsigned {
			return format.TypeUnsignedLong, nil
		}

		return format.TypeLong, nil
	}
}

func parseCell(cell string, typ format.FieldType) (format.Value, error) {
	switch typ {
	case format.TypeLong, format.TypeShort, format.TypeChar:
		v, err := strconv.ParseInt(cell, 10, 32)
		if err != nil {
			return format.Value{}, fmt.Errorf("parse %q as integer: %w", cell, err)
		}

		return format.IntValue(int32(v)), nil
	case format.TypeUnsignedLong:
		if v, err := strconv.ParseUint(cell, 10, 32); err == nil {
			return format.UintValue(uint32(v)), nil
		}
		// Negative literals are accepted for unsigned fields the same
		// way the binary codec treats the storage word.
		v, err := strconv.ParseInt(cell, 10, 32)
		if err != nil {
			return format.Value{}, fmt.Errorf("parse %q as integer: %w", cell, err)
		}

		return format.IntValue(int32(v)), nil
	case format.TypeFloat:
		v, err := strconv.ParseFloat(cell, 32)
		if err != nil {
			return format.Value{}, fmt.Errorf("parse %q as float: %w", cell, err)
		}

		return format.FloatValue(float32(v)), nil
	default:
		return format.StringValue(cell), nil
	}
}
