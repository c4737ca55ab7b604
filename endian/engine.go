// Package endian provides byte order utilities for BCSV binary
// encoding and decoding.
//
// BCSV files exist in both orientations: big-endian on GameCube/Wii
// titles and little-endian on the Switch ports. The byte order is an
// explicit property of every read and write operation, never inferred
// from file content (the format carries no endianness marker), so
// every binary routine in this module takes an EndianEngine argument.
//
// The package combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface satisfied by
// binary.BigEndian and binary.LittleEndian, so the engines interoperate
// with any standard-library code that expects a binary.ByteOrder.
//
// All engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface for byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of
// the GameCube/Wii titles and the conventional default for BCSV.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine, used by the
// Switch-era little-endian BCSV variant.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Native returns the host's native byte order, determined by probing a
// fixed integer value. Useful for diagnostics only; file byte order is
// always configured explicitly.
func Native() EndianEngine {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether the engine is the big-endian engine.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
