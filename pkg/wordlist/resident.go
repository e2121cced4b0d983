package wordlist

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Resident serves lookups from a table held entirely in memory. Forward
// lookup is an array index; reverse lookup goes through a map built once at
// construction.
type Resident struct {
	words [Count]string
	index map[string]Index
}

// NewResident builds a resident source from a full vocabulary. The slice
// must hold exactly Count distinct words no longer than MaxWordLen bytes.
func NewResident(words []string) (*Resident, error) {
	if len(words) != Count {
		return nil, fmt.Errorf("wordlist: got %d words, want %d", len(words), Count)
	}
	r := &Resident{index: make(map[string]Index, Count)}
	for i, w := range words {
		if len(w) == 0 || len(w) > MaxWordLen {
			return nil, fmt.Errorf("wordlist: word %d %q longer than %d bytes", i, w, MaxWordLen)
		}
		if _, dup := r.index[w]; dup {
			return nil, fmt.Errorf("wordlist: duplicate word %q", w)
		}
		r.words[i] = w
		r.index[w] = Index(i)
	}
	return r, nil
}

func (r *Resident) WordAt(ix Index) (string, error) {
	checkIndex(ix)
	return r.words[ix], nil
}

func (r *Resident) IndexOf(word string) (Index, bool, error) {
	ix, ok := r.index[word]
	return ix, ok, nil
}

var (
	englishOnce sync.Once
	english     *Resident
)

// English returns the shared resident source for the BIP-39 English
// vocabulary. The table is process-wide immutable state; the same pointer is
// returned to every caller.
func English() *Resident {
	englishOnce.Do(func() {
		r, err := NewResident(wordlists.English)
		if err != nil {
			panic(err)
		}
		english = r
	})
	return english
}
