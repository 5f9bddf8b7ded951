package crc

import (
	"encoding/binary"
	"math/bits"
)

// Word is the set of register widths the engine can be instantiated with.
// The width is fixed at the type level;
// checksums of any other width do not compile.
type Word interface {
	uint16 | uint32 | uint64
}

// ByteOrder selects the byte order used when a
// checksum is serialized to bytes.
// It affects serialization only,
// never the register arithmetic.
type ByteOrder uint8

const (
	// BigEndian serializes the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian serializes the least significant byte first.
	LittleEndian
	// NativeEndian serializes in the byte order of the host.
	// The produced bytes, and any residue derived through them,
	// are host-dependent and therefore not portable.
	NativeEndian
)

// Binary returns the encoding/binary order corresponding to o.
func (o ByteOrder) Binary() binary.AppendByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case LittleEndian:
		return binary.LittleEndian
	case NativeEndian:
		return binary.NativeEndian
	default:
		panic("crc: invalid byte order")
	}
}

// String returns the name of the byte order.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	case NativeEndian:
		return "native-endian"
	default:
		return "unknown"
	}
}

// Size returns the number of bytes in a checksum of width W.
func Size[W Word]() int {
	var v W
	switch any(v).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Reverse returns v with its bits reversed across the full width of W.
func Reverse[W Word](v W) W {
	switch x := any(v).(type) {
	case uint16:
		return W(bits.Reverse16(x))
	case uint32:
		return W(bits.Reverse32(x))
	case uint64:
		return W(bits.Reverse64(x))
	default:
		panic("crc: unsupported width")
	}
}

// AppendEndian appends v to dst serialized per o and
// returns the extended slice.
// Exactly Size[W]() bytes are appended.
func AppendEndian[W Word](dst []byte, v W, o ByteOrder) []byte {
	bo := o.Binary()
	switch x := any(v).(type) {
	case uint16:
		return bo.AppendUint16(dst, x)
	case uint32:
		return bo.AppendUint32(dst, x)
	case uint64:
		return bo.AppendUint64(dst, x)
	default:
		panic("crc: unsupported width")
	}
}

// EndianBytes returns v serialized per o as a slice of Size[W]() bytes.
func EndianBytes[W Word](v W, o ByteOrder) []byte {
	return AppendEndian(make([]byte, 0, 8), v, o)
}
