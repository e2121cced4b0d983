// Package commands defines the mnemo CLI.
//
// Commands
//
//   - generate   Create a fresh mnemonic from system entropy
//   - decode     Validate a mnemonic and print its entropy
//   - seed       Derive the binary seed from a mnemonic
//   - suggest    Complete a word prefix against the vocabulary
//   - export     Stage the vocabulary into a fixed-record file
//
// # Implementation
//
// The root command selects the word-list backing before any subcommand runs:
// the resident English table by default, or a fixed-record file opened as an
// external source when --wordlist-file is given. Subcommands are oblivious
// to which backing is active.
package commands
