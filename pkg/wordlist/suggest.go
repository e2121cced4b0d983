package wordlist

import "strings"

// Suggest returns every word beginning with prefix, in table order. An empty
// prefix returns the whole vocabulary.
//
// It works against any Source. On an external backing it binary-searches for
// the first candidate and reads forward from there, so the cost is
// O(log Count + matches) record fetches rather than a full scan.
func Suggest(src Source, prefix string) ([]string, error) {
	// Lower bound: first index whose word sorts >= prefix.
	lo, hi := 0, Count
	for lo < hi {
		mid := (lo + hi) / 2
		w, err := src.WordAt(Index(mid))
		if err != nil {
			return nil, err
		}
		if w < prefix {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	var out []string
	for i := lo; i < Count; i++ {
		w, err := src.WordAt(Index(i))
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(w, prefix) {
			break
		}
		out = append(out, w)
	}
	return out, nil
}
