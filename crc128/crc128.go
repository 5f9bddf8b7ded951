package crc128

import "github.com/pchchv/crc"

// CRC is a checksum accumulator for one 128-bit CRC variant.
// It holds the variant description,
// the derived lookup table and the running register.
// The mutating methods return the receiver,
// so a checksum reads as c.Initialize().Update(p).Finalize().
//
// An engine is reused for a new message only through Initialize;
// there is no implicit reset between messages.
type CRC struct {
	alg Algorithm
	tab *Table
	reg Uint128
}

// New returns an engine for the CRC variant with the given
// parameters.
// The lookup table, the initial register and the residue self-check
// constant are all derived here;
// see FromAlgorithm for the unchecked path.
func New(order crc.ByteOrder, poly, init Uint128, refin, refout bool, xorout Uint128) *CRC {
	return FromAlgorithm(NewAlgorithm(order, poly, init, refin, refout, xorout))
}

// FromAlgorithm returns an engine for a fully populated Algorithm,
// trusting alg.Residue as supplied.
// The algorithm information must be correct:
// an inconsistent residue is not detected and
// silently breaks Verify and VerifyBytes.
func FromAlgorithm(alg Algorithm) *CRC {
	return &CRC{
		alg: alg,
		tab: alg.MakeTable(),
		reg: alg.Initialize(),
	}
}

// Algorithm returns the variant description of the engine.
func (c *CRC) Algorithm() Algorithm {
	return c.alg
}

// Table returns the lookup table of the engine.
// The contents must not be modified.
func (c *CRC) Table() *Table {
	return c.tab
}

// Register returns the raw running register.
func (c *CRC) Register() Uint128 {
	return c.reg
}

// Initialize resets the register to the initial value of the variant.
func (c *CRC) Initialize() *CRC {
	c.reg = c.alg.Initialize()
	return c
}

// Update folds p into the running register.
// Updating chunk by chunk is equivalent to a single update with the
// concatenation of the chunks.
func (c *CRC) Update(p []byte) *CRC {
	c.reg = c.alg.Update(c.reg, c.tab, p)
	return c
}

// Finalize returns the checksum of the bytes folded since the last
// Initialize.
// The register is left untouched.
func (c *CRC) Finalize() Uint128 {
	return c.alg.Finalize(c.reg)
}

// Checksum returns the checksum of p, starting from a fresh register.
func (c *CRC) Checksum(p []byte) Uint128 {
	return c.Initialize().Update(p).Finalize()
}

// ChecksumBytes returns the checksum of p serialized per the byte
// order of the variant.
// The result is always exactly Size bytes.
func (c *CRC) ChecksumBytes(p []byte) []byte {
	return EndianBytes(c.Checksum(p), c.alg.ByteOrder)
}

// AppendChecksum appends the checksum of p, serialized per the byte
// order of the variant, to dst and returns the extended slice.
func (c *CRC) AppendChecksum(dst []byte, p []byte) []byte {
	return AppendEndian(dst, c.Checksum(p), c.alg.ByteOrder)
}

// Verify reports whether the running register matches the residue of
// the variant.
func (c *CRC) Verify() bool {
	return c.alg.Reflect(c.reg) == c.alg.Residue
}

// VerifyBytes reports whether p is error-free.
// p must consist of a message followed by its checksum as produced by
// ChecksumBytes;
// VerifyBytes returns true iff no bit errors are detected in the
// combination.
func (c *CRC) VerifyBytes(p []byte) bool {
	return c.Initialize().Update(p).Verify()
}

// Write folds p into the running register.
// It never fails and always reports len(p) bytes consumed.
// Together with Sum, Reset, Size and BlockSize it
// makes *CRC implement hash.Hash.
func (c *CRC) Write(p []byte) (n int, err error) {
	c.Update(p)
	return len(p), nil
}

// Sum appends the checksum of the bytes written since the last reset
// to in, serialized per the byte order of the variant,
// and returns the resulting slice.
// The register is left untouched.
func (c *CRC) Sum(in []byte) []byte {
	return AppendEndian(in, c.Finalize(), c.alg.ByteOrder)
}

// Reset resets the register to the initial value of the variant.
func (c *CRC) Reset() {
	c.Initialize()
}

// Size returns the number of bytes Sum appends.
func (c *CRC) Size() int {
	return Size
}

// BlockSize returns the block size of the hash, which is one byte.
func (c *CRC) BlockSize() int {
	return 1
}
