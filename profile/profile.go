// Package profile names the on-disk variant knobs of known titles.
//
// The binary format carries no self-description: byte order, string
// encoding and the padding byte all have to come from the caller. A
// Profile bundles one consistent set of those knobs under a name, so
// tooling can say "smg" instead of repeating three flags. Custom
// profiles load from YAML documents.
package profile

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/table"
)

// Profile is one named set of on-disk variant knobs.
type Profile struct {
	Name string `yaml:"name"`
	// ByteOrder is "big" or "little".
	ByteOrder string `yaml:"byte_order"`
	// Encoding is "shiftjis" or "utf8".
	Encoding string `yaml:"encoding"`
	// PadByte fills the file's alignment tail. Nil (the key absent
	// from the document) means the conventional 0x40; an explicit 0
	// pads with zero bytes.
	PadByte *byte `yaml:"pad_byte"`
}

var builtins = map[string]Profile{
	// GameCube and Wii titles write big-endian Shift-JIS tables with
	// the conventional '@' padding.
	"smg": {Name: "smg", ByteOrder: "big", Encoding: "shiftjis"},
	"sms": {Name: "sms", ByteOrder: "big", Encoding: "shiftjis"},
	// Switch ports keep the table content but flip the byte order.
	"switch": {Name: "switch", ByteOrder: "little", Encoding: "shiftjis"},
}

// Builtin returns the named built-in profile.
func Builtin(name string) (Profile, bool) {
	p, ok := builtins[name]

	return p, ok
}

// Names returns the built-in profile names in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Load reads one profile from a YAML document.
func Load(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if _, err := p.Options(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Options converts the profile into codec options. It fails on an
// unknown byte order or encoding name.
func (p Profile) Options() (table.Options, error) {
	opts := table.DefaultOptions()

	switch p.ByteOrder {
	case "", "big":
	case "little":
		table.WithLittleEndian()(&opts)
	default:
		return table.Options{}, fmt.Errorf("profile %q: unknown byte order %q", p.Name, p.ByteOrder)
	}

	if p.Encoding != "" {
		enc, ok := format.ParseStringEncoding(p.Encoding)
		if !ok {
			return table.Options{}, fmt.Errorf("profile %q: unknown encoding %q", p.Name, p.Encoding)
		}
		opts.Encoding = enc
	}

	if p.PadByte != nil {
		opts.PadByte = *p.PadByte
	}

	return opts, nil
}
