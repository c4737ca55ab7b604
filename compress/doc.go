// Package compress provides the at-rest compression codecs used for
// archived table dumps.
//
// Compression is never part of the table file format itself: a
// compressed dump is an ordinary file body wrapped by one of these
// codecs, and the codec choice travels out of band (a CLI flag or a
// file extension). Four codecs are available:
//
//   - None: pass-through, for plain dumps
//   - Zstd: best ratio, for archival
//   - S2: fastest, for bulk conversion pipelines
//   - LZ4: fast block compression with a better ratio than S2 on
//     text-heavy string pools
//
// Zstd has two build-tagged implementations: the cgo build binds
// valyala/gozstd for the reference C library, the pure-Go build uses
// klauspost/compress/zstd so cross-compiled binaries need no C
// toolchain. Both produce interchangeable streams.
package compress
