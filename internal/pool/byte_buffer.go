// Package pool provides pooled byte buffers for the encoder and the
// string-pool builder, so repeated encode operations reuse their
// working memory.
package pool

import "sync"

const (
	// FileBufferDefaultSize is the initial capacity of a pooled
	// buffer. Most BCSV files are a few KiB.
	FileBufferDefaultSize = 16 * 1024
	// FileBufferMaxThreshold is the largest buffer the pool retains;
	// bigger buffers are dropped to avoid memory bloat after an
	// unusually large file.
	FileBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is an append-oriented byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining allocated memory.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data, growing as needed. It never fails; the error
// return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)

	return nil
}

// ExtendZero appends n zero bytes and returns the slice covering them.
func (bb *ByteBuffer) ExtendZero(n int) []byte {
	start := len(bb.B)
	for cap(bb.B)-len(bb.B) < n {
		bb.Grow(n)
	}
	bb.B = bb.B[:start+n]
	region := bb.B[start:]
	for i := range region {
		region[i] = 0
	}

	return region
}

// Grow ensures capacity for at least n more bytes. Small buffers grow
// by the default size, large buffers by a quarter of their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := FileBufferDefaultSize
	if cap(bb.B) > 4*FileBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var fileBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(FileBufferDefaultSize)
	},
}

// GetFileBuffer retrieves an empty buffer from the pool.
func GetFileBuffer() *ByteBuffer {
	bb, _ := fileBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutFileBuffer returns a buffer to the pool. Buffers beyond the
// retention threshold are dropped.
func PutFileBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > FileBufferMaxThreshold {
		return
	}
	fileBufferPool.Put(bb)
}
