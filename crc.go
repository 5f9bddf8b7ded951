// Package crc implements parameterized cyclic redundancy checks over
// 16, 32 and 64-bit registers; the crc128 subpackage covers 128 bits.
//
// A CRC variant is described by an Algorithm: generator polynomial,
// register seed, input and output reflection flags, output xor mask
// and the byte order of the serialized checksum.
// The residue constant used for self-verification is derived from the
// other parameters, never supplied by hand.
// The engine is table-driven (the classical Sarwate byte-at-a-time
// update) and allocates only when a table or engine is constructed.
//
// All operations are synchronous and run in time proportional to the
// input length.
// Algorithm and Table values are immutable and may be shared by any
// number of engines without synchronization;
// the only mutable state is the plain integer register of each engine.
package crc

// CRC is a checksum accumulator for one CRC variant.
// It holds the variant description,
// the derived lookup table and the running register.
// The mutating methods return the receiver,
// so a checksum reads as
// c.Initialize().Update(p).Finalize().
//
// An engine is reused for a new message only through Initialize;
// there is no implicit reset between messages.
type CRC[W Word] struct {
	alg Algorithm[W]
	tab *Table[W]
	reg W
}

// New returns an engine for the CRC variant with the given
// parameters.
// The lookup table, the initial register and the residue self-check
// constant are all derived here;
// see FromAlgorithm for the unchecked path.
func New[W Word](order ByteOrder, poly, init W, refin, refout bool, xorout W) *CRC[W] {
	return FromAlgorithm(NewAlgorithm(order, poly, init, refin, refout, xorout))
}

// FromAlgorithm returns an engine for a fully populated Algorithm,
// trusting alg.Residue as supplied.
// The algorithm information must be correct:
// an inconsistent residue is not detected and
// silently breaks Verify and VerifyBytes.
func FromAlgorithm[W Word](alg Algorithm[W]) *CRC[W] {
	return &CRC[W]{
		alg: alg,
		tab: alg.MakeTable(),
		reg: alg.Initialize(),
	}
}

// Algorithm returns the variant description of the engine.
func (c *CRC[W]) Algorithm() Algorithm[W] {
	return c.alg
}

// Table returns the lookup table of the engine.
// The contents must not be modified.
func (c *CRC[W]) Table() *Table[W] {
	return c.tab
}

// Register returns the raw running register.
// The value is meaningful to callers only through Finalize or Verify.
func (c *CRC[W]) Register() W {
	return c.reg
}

// Initialize resets the register to the initial value of the variant.
// It is the only way to start a new message and is always safe to
// call.
func (c *CRC[W]) Initialize() *CRC[W] {
	c.reg = c.alg.Initialize()
	return c
}

// Update folds p into the running register.
// Updating chunk by chunk is equivalent to a single update with the
// concatenation of the chunks.
func (c *CRC[W]) Update(p []byte) *CRC[W] {
	c.reg = c.alg.Update(c.reg, c.tab, p)
	return c
}

// Finalize returns the checksum of the bytes folded since the last
// Initialize.
// The register is left untouched,
// so Finalize may be called speculatively mid-stream.
func (c *CRC[W]) Finalize() W {
	return c.alg.Finalize(c.reg)
}

// Checksum returns the checksum of p, starting from a fresh register.
func (c *CRC[W]) Checksum(p []byte) W {
	return c.Initialize().Update(p).Finalize()
}

// ChecksumBytes returns the checksum of p serialized per the byte
// order of the variant.
// The result is always exactly Size[W]() bytes.
func (c *CRC[W]) ChecksumBytes(p []byte) []byte {
	return EndianBytes(c.Checksum(p), c.alg.ByteOrder)
}

// AppendChecksum appends the checksum of p, serialized per the byte
// order of the variant, to dst and returns the extended slice.
func (c *CRC[W]) AppendChecksum(dst []byte, p []byte) []byte {
	return AppendEndian(dst, c.Checksum(p), c.alg.ByteOrder)
}

// Verify reports whether the running register matches the residue of
// the variant, that is,
// whether the bytes folded since the last Initialize form a message
// followed by its own correctly computed checksum.
func (c *CRC[W]) Verify() bool {
	return c.alg.Reflect(c.reg) == c.alg.Residue
}

// VerifyBytes reports whether p is error-free.
// p must consist of a message followed by its checksum as produced by
// ChecksumBytes;
// VerifyBytes returns true iff no bit errors are detected in the
// combination.
func (c *CRC[W]) VerifyBytes(p []byte) bool {
	return c.Initialize().Update(p).Verify()
}
