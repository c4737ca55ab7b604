package encoding

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/internal/pool"
)

// DecodePoolString resolves a string reference against the pool: the
// encoded bytes start at offset and run to the first NUL terminator.
//
// An offset at or beyond the pool end, or a missing terminator, fails
// with a StringPoolError; the pool is never read past its bounds.
func DecodePoolString(poolBytes []byte, offset uint32, enc format.StringEncoding) (string, error) {
	if int64(offset) >= int64(len(poolBytes)) {
		return "", &errs.StringPoolError{
			Offset:   offset,
			PoolSize: len(poolBytes),
			Reason:   "offset out of bounds",
		}
	}

	end := bytes.IndexByte(poolBytes[offset:], 0)
	if end < 0 {
		return "", &errs.StringPoolError{
			Offset:   offset,
			PoolSize: len(poolBytes),
			Reason:   "no null terminator before pool end",
		}
	}

	return DecodeText(poolBytes[offset:int(offset)+end], enc)
}

// PoolBuilder accumulates the string pool of one encode operation.
//
// Interning is deduplicating: the same string always maps to the same
// offset within a build session, and the finished pool holds exactly
// one copy per distinct encoded byte sequence. Lookups go through
// xxhash buckets with a byte-wise compare on hash agreement, so a
// 64-bit collision can never alias two different strings.
//
// A PoolBuilder is single-use: build, read Bytes, Release.
type PoolBuilder struct {
	buf      *pool.ByteBuffer
	buckets  map[uint64][]poolEntry
	encoding format.StringEncoding
	count    int
}

type poolEntry struct {
	offset uint32
	length int // encoded length without terminator
}

// NewPoolBuilder creates an empty pool builder encoding strings with
// the given character encoding.
func NewPoolBuilder(enc format.StringEncoding) *PoolBuilder {
	return &PoolBuilder{
		buf:      pool.GetFileBuffer(),
		buckets:  make(map[uint64][]poolEntry),
		encoding: enc,
	}
}

// Intern returns the pool offset of s, appending its encoded bytes
// plus terminator on first sight and reusing the existing entry on
// every later one. Encoding failures propagate as EncodingError.
func (b *PoolBuilder) Intern(s string) (uint32, error) {
	encoded, err := EncodeText(s, b.encoding)
	if err != nil {
		return 0, err
	}

	key := xxhash.Sum64(encoded)
	for _, entry := range b.buckets[key] {
		if entry.length == len(encoded) &&
			bytes.Equal(b.buf.Bytes()[entry.offset:int(entry.offset)+entry.length], encoded) {
			return entry.offset, nil
		}
	}

	offset := uint32(b.buf.Len()) //nolint:gosec
	b.buf.Write(encoded)
	b.buf.WriteByte(0)
	b.buckets[key] = append(b.buckets[key], poolEntry{offset: offset, length: len(encoded)})
	b.count++

	return offset, nil
}

// Bytes returns the finished pool. The slice shares the builder's
// buffer; copy it before calling Release.
func (b *PoolBuilder) Bytes() []byte {
	return b.buf.Bytes()
}

// Encoding returns the character encoding the builder encodes with.
func (b *PoolBuilder) Encoding() format.StringEncoding {
	return b.encoding
}

// Size returns the pool's byte length so far.
func (b *PoolBuilder) Size() int {
	return b.buf.Len()
}

// Count returns the number of distinct interned strings.
func (b *PoolBuilder) Count() int {
	return b.count
}

// Release returns the builder's buffer to the shared pool. The
// builder must not be used afterwards.
func (b *PoolBuilder) Release() {
	if b.buf != nil {
		pool.PutFileBuffer(b.buf)
		b.buf = nil
	}
	b.buckets = nil
	b.count = 0
}
