// Package mnemonic converts between raw entropy, seed phrases and derived
// binary seeds following the BIP-39 construction.
//
// Contents
//
//   - Entropy to phrase and phrase to entropy conversion with checksum
//     validation (EntropyToMnemonic, MnemonicToEntropy)
//   - Incremental phrase assembly for word-at-a-time entry (Builder)
//   - Seed derivation via PBKDF2-HMAC-SHA512 (MnemonicToSeed)
//   - Fresh phrase generation from crypto/rand (Generate)
//
// All operations run against a wordlist.Source, so the same code serves a
// memory-resident vocabulary or one paged in from external storage. Every
// internal buffer that holds entropy, word indices or derivation state is
// zeroed before a call returns, on success and failure paths alike; callers
// own the returned values and are responsible for wiping those.
//
// # Normalization
//
// No case folding or Unicode normalization is applied. Phrases are split on
// runs of whitespace and each word must match the vocabulary exactly; the
// canonical textual form (words joined by single spaces) is what seed
// derivation hashes. For the English vocabulary this matches the standard,
// whose NFKD normalization is a no-op on lowercase ASCII.
package mnemonic
