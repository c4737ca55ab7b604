// Package lookup implements the BCSV field-name hash and the
// hash-to-name resolution table.
//
// BCSV files identify columns only by a 32-bit hash of the original
// field name. Name resolution is an enrichment layer on top of that
// identity: a Table built from a corpus of known candidate names maps
// hashes back to readable names, and any hash without a match keeps a
// stable hex fallback identity of the form "[DEADBEEF]".
//
// A Table is built once and is safe for concurrent reads; decode and
// encode operations never mutate it.
package lookup

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/bcsv/errs"
)

// Calc computes the field-name hash used by the JGadget engine:
// a rolling 32-bit hash folding each byte as h = h*31 + b, starting
// from zero and wrapping modulo 2^32. Bytes with the high bit set are
// sign-extended before folding, matching the engine's signed-char
// arithmetic.
//
// The hash depends only on the name's bytes, never on file byte order.
func Calc(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*31 + uint32(int32(int8(name[i]))) //nolint:gosec
	}

	return h
}

// FallbackName formats a hash as its bracketed hex identity, used
// wherever a readable name is unavailable.
func FallbackName(hash uint32) string {
	return fmt.Sprintf("[%08X]", hash)
}

// ParseFallbackName parses a bracketed hex identity back into a hash.
// The second result is false if the string is not of the "[XXXXXXXX]"
// form.
func ParseFallbackName(name string) (uint32, bool) {
	if len(name) < 3 || name[0] != '[' || name[len(name)-1] != ']' {
		return 0, false
	}

	v, err := strconv.ParseUint(name[1:len(name)-1], 16, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}

// Table maps field hashes to known candidate names.
type Table struct {
	names map[uint32]string
}

// NewTable creates an empty table. Resolution over an empty table
// always yields the hex fallback identity.
func NewTable() *Table {
	return &Table{names: make(map[uint32]string)}
}

// FromNames builds a table from a corpus of candidate field names.
//
// Two distinct names folding to the same hash is reported as a
// HashCollisionError; a collision inside the corpus means resolution
// could silently attach the wrong name, so it is never auto-resolved.
// Duplicate occurrences of the same name are allowed.
func FromNames(names []string) (*Table, error) {
	t := NewTable()
	for _, name := range names {
		if _, err := t.Add(name); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// FromReader builds a table from a line-oriented name corpus: one
// candidate field name per line, blank lines and lines starting with
// '#' ignored. File access is the caller's concern; the loader only
// sees an io.Reader.
func FromReader(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := t.Add(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading name corpus: %w", err)
	}

	return t, nil
}

// Add registers a candidate name and returns its hash. Adding a name
// whose hash is already claimed by a different name fails with a
// HashCollisionError.
func (t *Table) Add(name string) (uint32, error) {
	hash := Calc(name)
	if existing, ok := t.names[hash]; ok && existing != name {
		return 0, &errs.HashCollisionError{Hash: hash, Names: []string{existing, name}}
	}
	t.names[hash] = name

	return hash, nil
}

// Resolve returns the known name for a hash. The second result is
// false when the hash has no entry in the corpus.
func (t *Table) Resolve(hash uint32) (string, bool) {
	name, ok := t.names[hash]

	return name, ok
}

// Name returns the known name for a hash, or its hex fallback
// identity when the corpus has no match.
func (t *Table) Name(hash uint32) string {
	if name, ok := t.names[hash]; ok {
		return name
	}

	return FallbackName(hash)
}

// Len returns the number of known names.
func (t *Table) Len() int {
	return len(t.names)
}
