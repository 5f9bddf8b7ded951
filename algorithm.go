package crc

import "math/bits"

// Table is a 256-entry lookup table representing a polynomial for
// efficient byte-at-a-time processing.
// A table is a pure function of the polynomial and the input
// reflection flag; two algorithms sharing those two fields share an
// identical table.
// The contents of a Table must not be modified.
type Table[W Word] [256]W

// Algorithm describes a CRC variant.
// Poly and Init are given in the normal (non-reflected)
// representation as conventionally published,
// with the top bit of the generator implicit.
// An Algorithm is immutable once constructed and is
// shared freely by value.
type Algorithm[W Word] struct {
	// ByteOrder is used when the final checksum is serialized to
	// bytes; it does not affect the register arithmetic.
	ByteOrder ByteOrder
	// Poly is the generator polynomial.
	Poly W
	// Init is the register seed.
	Init W
	// RefIn reports whether input bytes are processed least
	// significant bit first.
	RefIn bool
	// RefOut reports whether the final register value is
	// bit-reflected before output.
	RefOut bool
	// XorOut is xored into the final register value.
	XorOut W
	// Residue is the expected register value, after conditional
	// reflection and before XorOut, of a message concatenated with
	// its own checksum.
	// Use NewAlgorithm to have it derived from the other fields.
	Residue W
}

// NewAlgorithm returns an Algorithm with the given parameters and a
// derived Residue.
// Deriving the residue instead of accepting one keeps the self-check
// constant consistent with the rest of the parameter set.
// With NativeEndian the derived residue is host-dependent.
func NewAlgorithm[W Word](order ByteOrder, poly, init W, refin, refout bool, xorout W) Algorithm[W] {
	a := Algorithm[W]{
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
// and the entry bit-reversed coming out,
// so a single recurrence serves both conventions.
func calcByte[W Word](reciprocal W, refin bool, b byte) W {
	var c W
	if refin {
		c = W(b)
	} else {
		c = W(bits.Reverse8(b))
	}

	for i := 0; i < 8; i++ {
		if c&1 != 0 {
			c = (c >> 1) ^ reciprocal
		} else {
			c >>= 1
		}
	}

	if !refin {
		c = Reverse(c)
	}

	return c
}

// MakeTable returns the lookup table for the given polynomial and
// input reflection flag.
// The table must only ever be used with updates of the same
// reflection flag; mixing the two silently produces wrong results.
func MakeTable[W Word](poly W, refin bool) *Table[W] {
	var tab Table[W]
	reciprocal := Reverse(poly)
	for i := range tab {
		tab[i] = calcByte(reciprocal, refin, byte(i))
	}

	return &tab
}

// MakeTable returns the lookup table for a.Poly and a.RefIn.
func (a Algorithm[W]) MakeTable() *Table[W] {
	return MakeTable(a.Poly, a.RefIn)
}

// Initialize returns the initial register value:
// Init bit-reversed across the full width when RefIn is set,
// Init unchanged otherwise.
// Processing input LSB-first runs the whole computation in mirrored
// bit order, so the seed is mirrored once up front.
func (a Algorithm[W]) Initialize() W {
	if a.RefIn {
		return Reverse(a.Init)
	}

	return a.Init
}

// Reflect returns v bit-reversed iff exactly one of RefIn and RefOut
// is set, and v unchanged otherwise.
// It is the correction applied once at finalize time so that a
// reflected-input computation reports bits in the order the output
// convention expects.
func (a Algorithm[W]) Reflect(v W) W {
	if a.RefIn != a.RefOut {
		return Reverse(v)
	}

	return v
}

// Finalize turns a register value into the externally visible
// checksum: conditional reflection followed by XorOut.
func (a Algorithm[W]) Finalize(reg W) W {
	return a.Reflect(reg) ^ a.XorOut
}

// Update folds p into reg byte-at-a-time using tab and returns the
// new register value.
// tab must have been derived with the same input reflection flag as
// a.RefIn; a.MakeTable guarantees that.
func (a Algorithm[W]) Update(reg W, tab *Table[W], p []byte) W {
	if a.RefIn {
		for _, b := range p {
			reg = tab[byte(reg)^b] ^ (reg >> 8)
		}
	} else {
		shift := Size[W]()*8 - 8
		for _, b := range p {
			reg = tab[byte(reg>>shift)^b] ^ (reg << 8)
		}
	}

	return reg
}

// ComputeResidue derives the expected residue of the parameter set:
// the checksum of the empty message is serialized per a.ByteOrder,
// folded back through the table starting from the initialized
// register, and the result conditionally reflected.
// XorOut is not applied; verification compares against the register
// before the output mask.
func (a Algorithm[W]) ComputeResidue(tab *Table[W]) W {
	init := a.Initialize()
	var buf [8]byte
	sum := AppendEndian(buf[:0], a.Finalize(init), a.ByteOrder)
	return a.Reflect(a.Update(init, tab, sum))
}
