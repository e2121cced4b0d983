package mnemonic

import (
	"crypto/rand"
	"fmt"
	"strings"

	"mnemo/internal/bits"
	"mnemo/internal/memzero"
	"mnemo/pkg/wordlist"
)

// EntropyToMnemonic encodes entropy as a phrase. The entropy must be one of
// the five defined sizes; the result is deterministic for a given entropy
// and source. The caller keeps ownership of entropy and should wipe it once
// the phrase is no longer needed.
func EntropyToMnemonic(entropy []byte, src wordlist.Source) (string, error) {
	length, err := LengthFromEntropySize(len(entropy))
	if err != nil {
		return "", err
	}

	var buf [MaxEntropySize + 1]byte
	defer memzero.Wipe(buf[:])
	n := copy(buf[:], entropy)
	buf[n] = checksumByte(entropy)

	var indices [MaxWords]uint16
	defer memzero.WipeIndices(indices[:])
	bits.Pack(buf[:n+1], indices[:length.Words()])

	var sb strings.Builder
	sb.Grow(length.Words() * (wordlist.MaxWordLen + 1))
	for i := 0; i < length.Words(); i++ {
		w, err := src.WordAt(wordlist.Index(indices[i]))
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

// MnemonicToEntropy decodes a phrase back to its entropy, validating word
// count, vocabulary membership and checksum. The returned slice is owned by
// the caller, who should wipe it after use.
func MnemonicToEntropy(phrase string, src wordlist.Source) ([]byte, error) {
	words := strings.Fields(phrase)
	length, err := LengthFromWordCount(len(words))
	if err != nil {
		return nil, err
	}
	out := make([]byte, length.EntropySize())
	if _, err := decodeWords(words, src, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MnemonicToEntropyInto decodes a phrase into a caller-provided buffer and
// returns the number of entropy bytes written. dst must have room for the
// phrase's entropy size; on any failure dst is left untouched.
func MnemonicToEntropyInto(dst []byte, phrase string, src wordlist.Source) (int, error) {
	return decodeWords(strings.Fields(phrase), src, dst)
}

// Generate draws fresh entropy from crypto/rand and encodes it. words must
// be one of the five defined phrase sizes.
func Generate(words int, src wordlist.Source) (string, error) {
	length, err := LengthFromWordCount(words)
	if err != nil {
		return "", err
	}
	var buf [MaxEntropySize]byte
	defer memzero.Wipe(buf[:])
	ent := buf[:length.EntropySize()]
	if _, err := rand.Read(ent); err != nil {
		return "", fmt.Errorf("mnemonic: read entropy: %w", err)
	}
	return EntropyToMnemonic(ent, src)
}

// decodeWords maps words to indices and recovers the entropy into dst.
// dst is written only after the checksum verifies.
func decodeWords(words []string, src wordlist.Source, dst []byte) (int, error) {
	length, err := LengthFromWordCount(len(words))
	if err != nil {
		return 0, err
	}

	var indices [MaxWords]uint16
	defer memzero.WipeIndices(indices[:])
	for i, w := range words {
		ix, ok, err := src.IndexOf(w)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &UnknownWordError{Position: i, Word: w}
		}
		indices[i] = uint16(ix)
	}
	return entropyFromIndices(indices[:length.Words()], dst)
}

// entropyFromIndices unpacks validated word indices into dst after checking
// the checksum. Shared by phrase decoding and the incremental Builder.
func entropyFromIndices(indices []uint16, dst []byte) (int, error) {
	length, err := LengthFromWordCount(len(indices))
	if err != nil {
		return 0, err
	}
	size := length.EntropySize()
	if len(dst) < size {
		return 0, fmt.Errorf("mnemonic: destination holds %d bytes, need %d", len(dst), size)
	}

	var buf [MaxEntropySize + 1]byte
	defer memzero.Wipe(buf[:])
	bits.Unpack(indices, buf[:size+1])

	if !verifyChecksum(buf[:size], buf[size], length.checksumBits()) {
		return 0, ErrChecksum
	}
	copy(dst[:size], buf[:size])
	return size, nil
}
