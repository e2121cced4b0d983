package mnemonic

import (
	"crypto/sha256"
	"crypto/subtle"

	"mnemo/internal/memzero"
)

// checksumByte returns the first byte of SHA-256(entropy). The top ENT/32
// bits of it are the phrase checksum.
func checksumByte(entropy []byte) byte {
	sum := sha256.Sum256(entropy)
	b := sum[0]
	memzero.Wipe(sum[:])
	return b
}

// verifyChecksum recomputes the checksum of entropy and compares its top
// bits against the claimed checksum byte. The comparison is full-width
// regardless of where a mismatch occurs.
func verifyChecksum(entropy []byte, claimed byte, bits uint) bool {
	mask := byte(0xff) << (8 - bits)
	want := checksumByte(entropy) & mask
	return subtle.ConstantTimeByteEq(want, claimed&mask) == 1
}
