package compress

import (
	"fmt"

	"github.com/arloliu/bcsv/format"
)

// Compressor compresses a complete dump body in one call.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller;
	// the input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a dump body compressed by the matching
// Compressor. It fails on corrupted input or input produced by a
// different codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package
// are stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression
// type. All codecs are stateless and safe to share, so there is one
// instance per type.
func GetCodec(typ format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[typ]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", typ)
}
