package mnemonic

import (
	"strings"

	"mnemo/internal/memzero"
	"mnemo/pkg/wordlist"
)

// Builder assembles a phrase one word at a time, for flows where words
// arrive incrementally (recovery entry on a constrained device). The zero
// value is ready to use. A Builder holds word indices only; call Zero once
// the phrase or entropy has been extracted.
type Builder struct {
	indices [MaxWords]uint16
	n       int
}

// AddWord appends the next word of the phrase. It returns
// ErrMnemonicLength once the builder is full, or an UnknownWordError if the
// word is not in the vocabulary.
func (b *Builder) AddWord(word string, src wordlist.Source) error {
	if b.n == MaxWords {
		return ErrMnemonicLength
	}
	ix, ok, err := src.IndexOf(word)
	if err != nil {
		return err
	}
	if !ok {
		return &UnknownWordError{Position: b.n, Word: word}
	}
	b.indices[b.n] = uint16(ix)
	b.n++
	return nil
}

// Len returns the number of words added so far.
func (b *Builder) Len() int { return b.n }

// Finalizable reports whether the current word count is one of the five
// defined phrase sizes.
func (b *Builder) Finalizable() bool {
	_, err := LengthFromWordCount(b.n)
	return err == nil
}

// EntropyInto validates the accumulated phrase and writes its entropy to
// dst, returning the number of bytes written. The builder state is kept, so
// the caller can still render the phrase; call Zero when done.
func (b *Builder) EntropyInto(dst []byte) (int, error) {
	return entropyFromIndices(b.indices[:b.n], dst)
}

// Phrase renders the accumulated words in their textual form. It does not
// validate the checksum.
func (b *Builder) Phrase(src wordlist.Source) (string, error) {
	var sb strings.Builder
	sb.Grow(b.n * (wordlist.MaxWordLen + 1))
	for i := 0; i < b.n; i++ {
		w, err := src.WordAt(wordlist.Index(b.indices[i]))
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	return sb.String(), nil
}

// Zero wipes the accumulated indices and resets the builder.
func (b *Builder) Zero() {
	memzero.WipeIndices(b.indices[:])
	b.n = 0
}
