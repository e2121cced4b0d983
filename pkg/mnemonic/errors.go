package mnemonic

import (
	"errors"
	"fmt"
)

var (
	// ErrEntropyLength reports entropy that is not 16, 20, 24, 28 or 32
	// bytes long.
	ErrEntropyLength = errors.New("mnemonic: invalid entropy length")

	// ErrMnemonicLength reports a phrase that is not 12, 15, 18, 21 or 24
	// words long.
	ErrMnemonicLength = errors.New("mnemonic: unexpected number of words")

	// ErrChecksum reports a decoded phrase whose checksum bits disagree
	// with the checksum recomputed from its entropy.
	ErrChecksum = errors.New("mnemonic: checksum does not match")
)

// UnknownWordError reports a phrase word that is absent from the vocabulary.
type UnknownWordError struct {
	Position int // zero-based position within the phrase
	Word     string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("mnemonic: word %d %q is not in the word list", e.Position, e.Word)
}
