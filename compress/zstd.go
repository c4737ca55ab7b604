package compress

// ZstdCompressor compresses dump bodies with Zstandard, the best
// ratio of the available codecs. Suited to archival where dumps are
// written once and read rarely.
//
// The implementation is chosen at build time: cgo builds bind the
// reference C library via valyala/gozstd, pure-Go builds use
// klauspost/compress/zstd. The streams are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
