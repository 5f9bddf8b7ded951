package crc

import (
	"hash"

	"github.com/pchchv/crc/hashutil"
)

// Write folds p into the running register.
// It never fails and always reports len(p) bytes consumed.
// Together with Sum, Reset, Size and BlockSize it
// makes *CRC implement hash.Hash.
func (c *CRC[W]) Write(p []byte) (n int, err error) {
	c.Update(p)
	return len(p), nil
}

// Sum appends the checksum of the bytes written since the last reset
// to in, serialized per the byte order of the variant,
// and returns the resulting slice.
// The register is left untouched.
func (c *CRC[W]) Sum(in []byte) []byte {
	return AppendEndian(in, c.Finalize(), c.alg.ByteOrder)
}

// Reset resets the register to the initial value of the variant.
func (c *CRC[W]) Reset() {
	c.Initialize()
}

// Size returns the number of bytes Sum appends.
func (c *CRC[W]) Size() int {
	return Size[W]()
}

// BlockSize returns the block size of the hash, which is one byte.
func (c *CRC[W]) BlockSize() int {
	return 1
}

// hash16 adapts a 16-bit engine to hashutil.Hash16.
type hash16 struct {
	*CRC[uint16]
}

func (h hash16) Sum16() uint16 {
	return h.Finalize()
}

// hash32 adapts a 32-bit engine to hash.Hash32.
type hash32 struct {
	*CRC[uint32]
}

func (h hash32) Sum32() uint32 {
	return h.Finalize()
}

// hash64 adapts a 64-bit engine to hash.Hash64.
type hash64 struct {
	*CRC[uint64]
}

func (h hash64) Sum64() uint64 {
	return h.Finalize()
}

// NewHash16 returns a hashutil.Hash16 computing the 16-bit CRC
// variant described by alg.
// alg.Residue is trusted as supplied; use NewAlgorithm to derive it.
func NewHash16(alg Algorithm[uint16]) hashutil.Hash16 {
	return hash16{FromAlgorithm(alg)}
}

// NewHash32 returns a hash.Hash32 computing the 32-bit CRC variant
// described by alg.
// alg.Residue is trusted as supplied; use NewAlgorithm to derive it.
func NewHash32(alg Algorithm[uint32]) hash.Hash32 {
	return hash32{FromAlgorithm(alg)}
}

// NewHash64 returns a hash.Hash64 computing the 64-bit CRC variant
// described by alg.
// alg.Residue is trusted as supplied; use NewAlgorithm to derive it.
func NewHash64(alg Algorithm[uint64]) hash.Hash64 {
	return hash64{FromAlgorithm(alg)}
}
