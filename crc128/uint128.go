package crc128

import (
	"fmt"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer built from two 64-bit limbs.
// It carries exactly the operations the checksum recurrence needs and
// is comparable with ==.
type Uint128 struct {
	Hi uint64 // upper 64 bits
	Lo uint64 // lower 64 bits
}

// From64 returns v zero-extended to 128 bits.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// Shl returns u << n.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u >> n.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Reverse returns u with its 128 bits reversed.
func (u Uint128) Reverse() Uint128 {
	return Uint128{Hi: bits.Reverse64(u.Lo), Lo: bits.Reverse64(u.Hi)}
}

// String returns u as 32 lowercase hexadecimal digits.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}
