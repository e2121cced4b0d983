package wordlist

// RecordReader is the random-access read contract an externally stored
// vocabulary must provide. The surrounding application supplies the concrete
// medium (flash page reads, a secure-element command, a file).
type RecordReader interface {
	// ReadWord copies the word at ix into buf and returns its length in
	// bytes. buf always has room for MaxWordLen bytes. Implementations
	// must not retain buf.
	ReadWord(ix Index, buf []byte) (int, error)
}

// External serves lookups from a RecordReader, fetching one record per
// forward lookup and O(log Count) records per reverse lookup. It holds no
// word data itself and allocates only the returned word string.
//
// The backing store must contain the vocabulary in sorted record order, as
// published vocabularies are; reverse lookup relies on it.
type External struct {
	r RecordReader
}

// NewExternal wraps a record reader as a word source.
func NewExternal(r RecordReader) *External { return &External{r: r} }

func (e *External) WordAt(ix Index) (string, error) {
	checkIndex(ix)
	var buf [MaxWordLen]byte
	n, err := e.r.ReadWord(ix, buf[:])
	if err != nil {
		return "", &SourceError{Index: ix, Err: err}
	}
	return string(buf[:n]), nil
}

func (e *External) IndexOf(word string) (Index, bool, error) {
	var buf [MaxWordLen]byte
	lo, hi := 0, Count
	for lo < hi {
		mid := (lo + hi) / 2
		n, err := e.r.ReadWord(Index(mid), buf[:])
		if err != nil {
			return 0, false, &SourceError{Index: Index(mid), Err: err}
		}
		switch c := compare(buf[:n], word); {
		case c == 0:
			return Index(mid), true, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false, nil
}
