package crc128_test

import (
	"hash"
	"math/bits"
	"testing"

	"github.com/pchchv/crc"
	"github.com/pchchv/crc/crc128"
)

var _ hash.Hash = (*crc128.CRC)(nil)

var checkBytes = []byte("123456789")

// No 128-bit parameter sets are published,
// so the variants below extend well-known generators to 128 bits and
// the engine is validated against an independent bit-at-a-time
// implementation and the self-checking residue and reflection laws.
var (
	poly128 = crc128.Uint128{Hi: 0x42f0e1eba9ea3693, Lo: 0xb4cbbf0fe3a1f533}
	ones128 = crc128.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

	reflected    = crc128.NewAlgorithm(crc.LittleEndian, poly128, ones128, true, true, ones128)
	nonReflected = crc128.NewAlgorithm(crc.BigEndian, poly128, crc128.Uint128{}, false, false, crc128.Uint128{})
)

// refChecksum is an independent bit-at-a-time implementation in the
// normal (MSB-first) domain, used to cross-check the table-driven
// engine.
func refChecksum(alg crc128.Algorithm, p []byte) crc128.Uint128 {
	reg := alg.Init
	for _, b := range p {
		if alg.RefIn {
			b = bits.Reverse8(b)
		}
		reg = reg.Xor(crc128.From64(uint64(b)).Shl(120))
		for i := 0; i < 8; i++ {
			if reg.Hi&(1<<63) != 0 {
				reg = reg.Shl(1).Xor(alg.Poly)
			} else {
				reg = reg.Shl(1)
			}
		}
	}

	if alg.RefOut {
		reg = reg.Reverse()
	}

	return reg.Xor(alg.XorOut)
}

func TestBitwiseReference(t *testing.T) {
	msgs := [][]byte{nil, []byte("a"), checkBytes, []byte("the quick brown fox jumps over the lazy dog")}
	for _, alg := range []crc128.Algorithm{reflected, nonReflected} {
		c := crc128.FromAlgorithm(alg)
		for _, m := range msgs {
			want := refChecksum(alg, m)
			if got := c.Checksum(m); got != want {
				t.Errorf("refin=%v: checksum of %q; expected %v, got %v", alg.RefIn, m, want, got)
			}
		}
	}
}

// A table entry at 0x80 of a reflected table is the reciprocal
// polynomial, and the entry at 0x01 of a non-reflected table is the
// polynomial itself.
func TestTableLandmarks(t *testing.T) {
	if got := crc128.MakeTable(poly128, true)[0x80]; got != poly128.Reverse() {
		t.Errorf("reflected entry 0x80; expected the reciprocal %v, got %v", poly128.Reverse(), got)
	}
	if got := crc128.MakeTable(poly128, false)[0x01]; got != poly128 {
		t.Errorf("non-reflected entry 0x01; expected the polynomial %v, got %v", poly128, got)
	}
	if got := crc128.MakeTable(poly128, false)[0x00]; got != (crc128.Uint128{}) {
		t.Errorf("entry 0x00; expected zero, got %v", got)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	msgs := [][]byte{nil, []byte("a"), checkBytes}
	for _, alg := range []crc128.Algorithm{reflected, nonReflected} {
		c := crc128.FromAlgorithm(alg)
		for _, m := range msgs {
			word := c.AppendChecksum(append([]byte(nil), m...), m)
			if !c.VerifyBytes(word) {
				t.Errorf("refin=%v: message %q with its own checksum failed verification", alg.RefIn, m)
			}

			// any single flipped bit must be detected.
			word[len(word)/2] ^= 0x10
			if c.VerifyBytes(word) {
				t.Errorf("refin=%v: corrupted message %q passed verification", alg.RefIn, m)
			}
		}
	}
}

// With a zero output mask the register annihilates itself over its
// own checksum, so the derived residue must be zero.
func TestZeroXorOutResidue(t *testing.T) {
	refl := crc128.NewAlgorithm(crc.LittleEndian, poly128, ones128, true, true, crc128.Uint128{})
	if refl.Residue != (crc128.Uint128{}) {
		t.Errorf("reflected residue; expected zero, got %v", refl.Residue)
	}

	norm := crc128.NewAlgorithm(crc.BigEndian, poly128, ones128, false, false, crc128.Uint128{})
	if norm.Residue != (crc128.Uint128{}) {
		t.Errorf("non-reflected residue; expected zero, got %v", norm.Residue)
	}
}

func TestStreaming(t *testing.T) {
	msg := []byte("a message large enough to be split into many uneven chunks")
	for _, alg := range []crc128.Algorithm{reflected, nonReflected} {
		c := crc128.FromAlgorithm(alg)
		c.Initialize().Update(msg)
		want := c.Register()
		for _, size := range []int{1, 3, 7, 16, len(msg) - 1, len(msg)} {
			c.Initialize()
			for rest := msg; len(rest) > 0; {
				n := size
				if n > len(rest) {
					n = len(rest)
				}
				c.Update(rest[:n])
				rest = rest[n:]
			}
			if got := c.Register(); got != want {
				t.Errorf("refin=%v: streaming in chunks of %d; expected register %v, got %v", alg.RefIn, size, want, got)
			}
		}
	}
}

func TestConstructionEquivalence(t *testing.T) {
	for _, a := range []crc128.Algorithm{reflected, nonReflected} {
		validated := crc128.New(a.ByteOrder, a.Poly, a.Init, a.RefIn, a.RefOut, a.XorOut)
		unchecked := crc128.FromAlgorithm(validated.Algorithm())
		if validated.Algorithm() != unchecked.Algorithm() {
			t.Errorf("refin=%v: algorithms differ; expected %+v, got %+v", a.RefIn, validated.Algorithm(), unchecked.Algorithm())
		}
		if validated.Register() != unchecked.Register() {
			t.Errorf("refin=%v: initial registers differ; expected %v, got %v", a.RefIn, validated.Register(), unchecked.Register())
		}
		if *validated.Table() != *unchecked.Table() {
			t.Errorf("refin=%v: lookup tables differ", a.RefIn)
		}
		if validated.Checksum(checkBytes) != unchecked.Checksum(checkBytes) {
			t.Errorf("refin=%v: checksums differ", a.RefIn)
		}
	}
}

// A reflected variant is the bit mirror of the non-reflected variant
// run over per-byte bit-reversed input.
func TestReflectionDuality(t *testing.T) {
	refl := crc128.New(crc.LittleEndian, poly128, ones128, true, true, ones128)
	norm := crc128.New(crc.BigEndian, poly128, ones128, false, false, crc128.Uint128{})
	msg := append(append([]byte(nil), checkBytes...), checkBytes...)
	rev := make([]byte, len(msg))
	for i, b := range msg {
		rev[i] = bits.Reverse8(b)
	}

	want := norm.Checksum(rev).Reverse().Xor(ones128)
	if got := refl.Checksum(msg); got != want {
		t.Errorf("reflected checksum %v; expected mirror of non-reflected checksum %v", got, want)
	}
}

func TestChecksumBytesLength(t *testing.T) {
	for _, alg := range []crc128.Algorithm{reflected, nonReflected} {
		if got := crc128.FromAlgorithm(alg).ChecksumBytes(checkBytes); len(got) != crc128.Size {
			t.Errorf("refin=%v: serialized checksum length; expected %d, got %d", alg.RefIn, crc128.Size, len(got))
		}
	}
}

// Finalize must not disturb the running register.
func TestFinalizeMidStream(t *testing.T) {
	c := crc128.FromAlgorithm(reflected)
	want := c.Checksum(checkBytes)
	c.Initialize()
	for i := range checkBytes {
		c.Update(checkBytes[i : i+1])
		c.Finalize()
	}
	if got := c.Finalize(); got != want {
		t.Errorf("speculative finalize disturbed the register; expected %v, got %v", want, got)
	}
}
