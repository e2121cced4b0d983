// Package wordlist abstracts storage of the 2048-word mnemonic vocabulary.
//
// Two interchangeable backings implement the Source contract:
//
//   - Resident holds the whole table in memory with O(1) forward lookup and
//     a prebuilt reverse index.
//   - External reads fixed-size records on demand from a RecordReader (flash,
//     secure element, file); reverse lookup is a binary search over the
//     sorted table, at most 12 probes.
//
// Callers never branch on which backing is active; both return identical
// results for every index and word. The English table is the BIP-39 English
// word list, exposed via English.
package wordlist
