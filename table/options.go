package table

import (
	"github.com/arloliu/bcsv/endian"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/section"
)

// UnknownFieldPolicy decides what Decode does with a field whose hash
// has no entry in the name corpus.
type UnknownFieldPolicy uint8

const (
	// PreserveUnknownFields keeps unresolved fields as first-class
	// columns addressable by hash, named by their hex fallback
	// identity. This is the default.
	PreserveUnknownFields UnknownFieldPolicy = iota
	// DropUnknownFields discards unresolved fields from the decoded
	// table.
	DropUnknownFields
)

// Options bundles the configuration of one decode or encode
// operation. Nothing here is ever inferred from file content: the
// format carries no endianness or encoding marker, so the caller
// states both explicitly. An Options value is resolved once per
// operation and never mutated mid-operation.
type Options struct {
	// Engine is the byte order of the file.
	Engine endian.EndianEngine
	// Encoding is the character encoding of string data.
	Encoding format.StringEncoding
	// UnknownFields picks the policy for hashes the corpus cannot
	// resolve.
	UnknownFields UnknownFieldPolicy
	// LosslessLayout makes Encode reuse the stride, field offsets and
	// data offset captured at decode time, reproducing the original
	// byte layout. With it unset, Encode computes a fresh canonical
	// layout from the field types.
	LosslessLayout bool
	// PadByte fills the alignment tail at the end of the file.
	PadByte byte
}

// Option is a functional option mutating an Options value.
type Option func(*Options)

// DefaultOptions returns the conventional configuration of the
// GameCube/Wii titles: big-endian, Shift-JIS, unresolved fields
// preserved, '@' padding.
func DefaultOptions() Options {
	return Options{
		Engine:        endian.GetBigEndianEngine(),
		Encoding:      format.EncodingShiftJIS,
		UnknownFields: PreserveUnknownFields,
		PadByte:       section.DefaultPadByte,
	}
}

// NewOptions builds an Options from the defaults plus the given
// option functions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithBigEndian selects big-endian byte order.
func WithBigEndian() Option {
	return func(o *Options) { o.Engine = endian.GetBigEndianEngine() }
}

// WithLittleEndian selects little-endian byte order.
func WithLittleEndian() Option {
	return func(o *Options) { o.Engine = endian.GetLittleEndianEngine() }
}

// WithEncoding selects the string character encoding.
func WithEncoding(enc format.StringEncoding) Option {
	return func(o *Options) { o.Encoding = enc }
}

// WithUnknownFieldPolicy selects the unresolved-field policy.
func WithUnknownFieldPolicy(policy UnknownFieldPolicy) Option {
	return func(o *Options) { o.UnknownFields = policy }
}

// WithLosslessLayout toggles byte-layout reuse on encode.
func WithLosslessLayout(enabled bool) Option {
	return func(o *Options) { o.LosslessLayout = enabled }
}

// WithPadByte selects the alignment padding byte.
func WithPadByte(b byte) Option {
	return func(o *Options) { o.PadByte = b }
}
