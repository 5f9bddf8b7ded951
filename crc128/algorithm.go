// Package crc128 implements parameterized 128-bit cyclic redundancy
// checks.
// It mirrors the crc package one-for-one,
// specialized over a two-limb Uint128 register since Go has no native
// 128-bit unsigned integer.
package crc128

import (
	"encoding/binary"
	"math/bits"

	"github.com/pchchv/crc"
)

// Size of a 128-bit checksum in bytes.
const Size = 16

// nativeLittle reports whether the host stores integers least
// significant byte first.
var nativeLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	return b[0] == 0x02
}()

// Table is a 256-entry lookup table representing a polynomial for
// efficient byte-at-a-time processing.
// A table is a pure function of the polynomial and the input
// reflection flag.
// The contents of a Table must not be modified.
type Table [256]Uint128

// Algorithm describes a 128-bit CRC variant.
// Poly and Init are given in the normal (non-reflected)
// representation, with the top bit of the generator implicit.
// An Algorithm is immutable once constructed and is shared freely by
// value.
type Algorithm struct {
	// ByteOrder is used when the final checksum is serialized to
	// bytes; it does not affect the register arithmetic.
	ByteOrder crc.ByteOrder
	// Poly is the generator polynomial.
	Poly Uint128
	// Init is the register seed.
	Init Uint128
	// RefIn reports whether input bytes are processed least
	// significant bit first.
	RefIn bool
	// RefOut reports whether the final register value is
	// bit-reflected before output.
	RefOut bool
	// XorOut is xored into the final register value.
	XorOut Uint128
	// Residue is the expected register value, after conditional
	// reflection and before XorOut, of a message concatenated with
	// its own checksum.
	// Use NewAlgorithm to have it derived from the other fields.
	Residue Uint128
}

// NewAlgorithm returns an Algorithm with the given parameters and a
// derived Residue.
// With crc.NativeEndian the derived residue is host-dependent.
func NewAlgorithm(order crc.ByteOrder, poly, init Uint128, refin, refout bool, xorout Uint128) Algorithm {
	a := Algorithm{
		ByteOrder: order,
		Poly:      poly,
		Init:      init,
		RefIn:     refin,
		RefOut:    refout,
		XorOut:    xorout,
	}
	a.Residue = a.ComputeResidue(a.MakeTable())
	return a
}

// calcByte simulates the 8 shift and conditional xor steps of one
// input byte against the reciprocal (bit-reversed) polynomial.
// The recurrence is defined LSB-first;
// for the non-reflected convention the byte is bit-reversed going in
// and the entry bit-reversed coming out.
func calcByte(reciprocal Uint128, refin bool, b byte) Uint128 {
	var c Uint128
	if refin {
		c = From64(uint64(b))
	} else {
		c = From64(uint64(bits.Reverse8(b)))
	}

	for i := 0; i < 8; i++ {
		if c.Lo&1 != 0 {
			c = c.Shr(1).Xor(reciprocal)
		} else {
			c = c.Shr(1)
		}
	}

	if !refin {
		c = c.Reverse()
	}

	return c
}

// MakeTable returns the lookup table for the given polynomial and
// input reflection flag.
// The table must only ever be used with updates of the same
// reflection flag.
func MakeTable(poly Uint128, refin bool) *Table {
	var tab Table
	reciprocal := poly.Reverse()
	for i := range tab {
		tab[i] = calcByte(reciprocal, refin, byte(i))
	}

	return &tab
}

// MakeTable returns the lookup table for a.Poly and a.RefIn.
func (a Algorithm) MakeTable() *Table {
	return MakeTable(a.Poly, a.RefIn)
}

// Initialize returns the initial register value:
// Init bit-reversed across the full width when RefIn is set,
// Init unchanged otherwise.
func (a Algorithm) Initialize() Uint128 {
	if a.RefIn {
		return a.Init.Reverse()
	}

	return a.Init
}

// Reflect returns v bit-reversed iff exactly one of RefIn and RefOut
// is set, and v unchanged otherwise.
func (a Algorithm) Reflect(v Uint128) Uint128 {
	if a.RefIn != a.RefOut {
		return v.Reverse()
	}

	return v
}

// Finalize turns a register value into the externally visible
// checksum: conditional reflection followed by XorOut.
func (a Algorithm) Finalize(reg Uint128) Uint128 {
	return a.Reflect(reg).Xor(a.XorOut)
}

// Update folds p into reg byte-at-a-time using tab and returns the
// new register value.
// tab must have been derived with the same input reflection flag as
// a.RefIn; a.MakeTable guarantees that.
func (a Algorithm) Update(reg Uint128, tab *Table, p []byte) Uint128 {
	if a.RefIn {
		for _, b := range p {
			reg = tab[byte(reg.Lo)^b].Xor(reg.Shr(8))
		}
	} else {
		for _, b := range p {
			reg = tab[byte(reg.Hi>>56)^b].Xor(reg.Shl(8))
		}
	}

	return reg
}

// AppendEndian appends v to dst serialized per o and returns the
// extended slice.
// Exactly Size bytes are appended.
// crc.NativeEndian follows the limb and byte order of the host and is
// not portable.
func AppendEndian(dst []byte, v Uint128, o crc.ByteOrder) []byte {
	little := o == crc.LittleEndian || (o == crc.NativeEndian && nativeLittle)
	if little {
		dst = binary.LittleEndian.AppendUint64(dst, v.Lo)
		return binary.LittleEndian.AppendUint64(dst, v.Hi)
	}

	dst = binary.BigEndian.AppendUint64(dst, v.Hi)
	return binary.BigEndian.AppendUint64(dst, v.Lo)
}

// EndianBytes returns v serialized per o as a slice of Size bytes.
func EndianBytes(v Uint128, o crc.ByteOrder) []byte {
	return AppendEndian(make([]byte, 0, Size), v, o)
}

// ComputeResidue derives the expected residue of the parameter set:
// the checksum of the empty message is serialized per a.ByteOrder,
// folded back through the table starting from the initialized
// register, and the result conditionally reflected.
// XorOut is not applied.
func (a Algorithm) ComputeResidue(tab *Table) Uint128 {
	init := a.Initialize()
	var buf [Size]byte
	sum := AppendEndian(buf[:0], a.Finalize(init), a.ByteOrder)
	return a.Reflect(a.Update(init, tab, sum))
}
