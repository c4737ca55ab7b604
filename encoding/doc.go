// Package encoding implements the value-level codecs of the BCSV
// format: packed-field extraction and injection within fixed-stride
// records, character encoding of string data, and the deduplicating
// string pool.
//
// Everything here is pure byte manipulation, independent of file I/O.
// Byte order is supplied per operation through an endian.EndianEngine;
// nothing in this package assumes an orientation.
package encoding
