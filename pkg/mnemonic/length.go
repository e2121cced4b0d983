package mnemonic

// Length is one of the five defined phrase sizes, expressed as a word count.
// Each maps one-to-one onto an entropy size: 12 words carry 16 bytes, then
// 15↔20, 18↔24, 21↔28 and 24↔32.
type Length int

const (
	Words12 Length = 12
	Words15 Length = 15
	Words18 Length = 18
	Words21 Length = 21
	Words24 Length = 24
)

const (
	// MaxWords is the longest defined phrase.
	MaxWords = int(Words24)

	// MaxEntropySize is the largest defined entropy size in bytes.
	MaxEntropySize = 32
)

// LengthFromWordCount returns the Length for a word count, or
// ErrMnemonicLength if the count is not one of the five defined sizes.
func LengthFromWordCount(words int) (Length, error) {
	switch l := Length(words); l {
	case Words12, Words15, Words18, Words21, Words24:
		return l, nil
	}
	return 0, ErrMnemonicLength
}

// LengthFromEntropySize returns the Length for an entropy byte count, or
// ErrEntropyLength if the count is not one of the five defined sizes.
func LengthFromEntropySize(size int) (Length, error) {
	if size < 16 || size > MaxEntropySize || size%4 != 0 {
		return 0, ErrEntropyLength
	}
	return Length(size / 4 * 3), nil
}

// Words returns the phrase size in words.
func (l Length) Words() int { return int(l) }

// EntropySize returns the entropy size in bytes.
func (l Length) EntropySize() int { return int(l) / 3 * 4 }

// checksumBits returns the number of checksum bits, ENT/32.
func (l Length) checksumBits() uint { return uint(l.EntropySize() / 4) }
