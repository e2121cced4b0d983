// Package memzero wipes buffers that held secret material.
//
// Wiping is best-effort: it aims to reduce the window during which entropy,
// passphrases or derived key blocks stay readable in memory, and to keep the
// compiler from eliding the overwrite.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Wipe zeroes the provided buffer without allocating. Use it on fixed-size
// scratch buffers where Zero's temporary would defeat the purpose.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}

// WipeIndices zeroes a slice of word indices.
//
//go:noinline
func WipeIndices(ix []uint16) {
	for i := range ix {
		ix[i] = 0
	}
	runtime.KeepAlive(&ix)
}
