package wordlist

import "fmt"

const (
	// Count is the number of words in a vocabulary.
	Count = 2048

	// MaxWordLen is the longest word in bytes. External stores use it as
	// their fixed record size.
	MaxWordLen = 8
)

// Index identifies a word by its position in the vocabulary, 0 through 2047.
type Index uint16

// Source is the lookup contract the mnemonic codec depends on.
//
// Implementations must present the same bijective, stably ordered vocabulary
// in both directions. Passing an Index >= Count is a caller bug and panics.
type Source interface {
	// WordAt returns the word stored at ix.
	WordAt(ix Index) (string, error)

	// IndexOf returns the position of word. ok is false when the word is
	// not in the vocabulary; err is non-nil only when the backing itself
	// failed to complete the lookup.
	IndexOf(word string) (ix Index, ok bool, err error)
}

// SourceError reports that a backing could not complete a read. It wraps the
// collaborator's cause and records which record was being fetched.
type SourceError struct {
	Index Index
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("wordlist: read record %d: %v", e.Index, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func checkIndex(ix Index) {
	if ix >= Count {
		panic(fmt.Sprintf("wordlist: index %d out of range", ix))
	}
}

// compare orders a raw record against a word without converting the record
// to a string.
func compare(b []byte, s string) int {
	n := len(b)
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		if b[i] != s[i] {
			if b[i] < s[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(b) < len(s):
		return -1
	case len(b) > len(s):
		return 1
	}
	return 0
}
