// Package hashutil provides utility interfaces for hash functions of
// widths the standard hash package does not cover.
package hashutil

import "hash"

// Hash16 is the common interface implemented by all 16-bit hash functions.
type Hash16 interface {
	hash.Hash
	Sum16() uint16 // returns the 16-bit checksum of the hash
}
