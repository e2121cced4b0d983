package mnemonic

import (
	"crypto/sha512"
	"hash"
	"strings"

	"mnemo/internal/memzero"
	"mnemo/pkg/wordlist"
)

const (
	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	// seedIterations is the PBKDF2 iteration count fixed by the standard.
	seedIterations = 2048

	// seedSaltPrefix is prepended to the passphrase to form the PBKDF2
	// salt.
	seedSaltPrefix = "mnemonic"
)

// MnemonicToSeed validates a phrase against src and derives its 64-byte
// seed with PBKDF2-HMAC-SHA512. The passphrase may be empty. The returned
// slice is owned by the caller, who should wipe it after use; no internal
// copy of the seed, the canonical phrase or the derivation state survives
// the call.
func MnemonicToSeed(phrase, passphrase string, src wordlist.Source) ([]byte, error) {
	var out [SeedSize]byte
	if err := MnemonicToSeedInto(&out, phrase, passphrase, src); err != nil {
		return nil, err
	}
	return out[:], nil
}

// MnemonicToSeedInto is MnemonicToSeed writing into a caller-provided
// buffer. On failure dst is left untouched.
func MnemonicToSeedInto(dst *[SeedSize]byte, phrase, passphrase string, src wordlist.Source) error {
	words := strings.Fields(phrase)

	// Reject anything that does not decode; derivation hashes the
	// canonical form, so a phrase that fails validation here would
	// silently derive a different seed than its corrected spelling.
	var scratch [MaxEntropySize]byte
	_, err := decodeWords(words, src, scratch[:])
	memzero.Wipe(scratch[:])
	if err != nil {
		return err
	}

	// Canonical password bytes: the words joined by single spaces.
	pw := make([]byte, 0, len(words)*(wordlist.MaxWordLen+1))
	defer memzero.Zero(pw)
	for i, w := range words {
		if i > 0 {
			pw = append(pw, ' ')
		}
		pw = append(pw, w...)
	}

	// Salt for the single output block: prefix, passphrase, INT(1).
	salt := make([]byte, 0, len(seedSaltPrefix)+len(passphrase)+4)
	defer memzero.Zero(salt)
	salt = append(salt, seedSaltPrefix...)
	salt = append(salt, passphrase...)
	salt = append(salt, 0, 0, 0, 1)

	deriveBlock(dst, pw, salt)
	return nil
}

// deriveBlock computes the first (and, at 64 output bytes, only) PBKDF2
// block: U1 = PRF(password, salt‖INT(1)), Ui = PRF(password, Ui-1), with all
// Ui XOR-folded into dst. Every intermediate buffer is wiped before return.
func deriveBlock(dst *[SeedSize]byte, password, salt []byte) {
	prf := newHMACSHA512(password)
	defer prf.wipe()

	var u [sha512.Size]byte
	defer memzero.Wipe(u[:])

	prf.sum(&u, salt)
	copy(dst[:], u[:])
	for i := 1; i < seedIterations; i++ {
		prf.sum(&u, u[:])
		for j := range dst {
			dst[j] ^= u[j]
		}
	}
}

// hmacSHA512 is an HMAC instance whose key pads the caller can wipe. The
// stdlib crypto/hmac keeps its padded key in state it never exposes, which
// rules it out here.
type hmacSHA512 struct {
	ipad  [sha512.BlockSize]byte
	opad  [sha512.BlockSize]byte
	inner hash.Hash
	outer hash.Hash
}

func newHMACSHA512(key []byte) *hmacSHA512 {
	p := &hmacSHA512{inner: sha512.New(), outer: sha512.New()}

	var k [sha512.BlockSize]byte
	defer memzero.Wipe(k[:])
	if len(key) > sha512.BlockSize {
		sum := sha512.Sum512(key)
		copy(k[:], sum[:])
		memzero.Wipe(sum[:])
	} else {
		copy(k[:], key)
	}
	for i := range k {
		p.ipad[i] = k[i] ^ 0x36
		p.opad[i] = k[i] ^ 0x5c
	}
	return p
}

// sum writes HMAC(key, data) into out. out doubles as the scratch for the
// inner digest, so no further buffer is needed.
func (p *hmacSHA512) sum(out *[sha512.Size]byte, data []byte) {
	p.inner.Reset()
	p.inner.Write(p.ipad[:])
	p.inner.Write(data)
	p.inner.Sum(out[:0])

	p.outer.Reset()
	p.outer.Write(p.opad[:])
	p.outer.Write(out[:])
	p.outer.Sum(out[:0])
}

// wipe clears the key pads. The digest objects hold chaining state the
// stdlib does not let us clear; they never contain key bytes directly.
func (p *hmacSHA512) wipe() {
	memzero.Wipe(p.ipad[:])
	memzero.Wipe(p.opad[:])
	p.inner.Reset()
	p.outer.Reset()
}
