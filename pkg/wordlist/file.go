package wordlist

import (
	"fmt"
	"os"
)

// fileSize is the exact byte size of a record file.
const fileSize = Count * MaxWordLen

// File reads word records from a fixed-geometry file: Count records of
// MaxWordLen bytes each, zero padded. It implements RecordReader and is safe
// for concurrent use (reads go through ReadAt).
type File struct {
	f *os.File
}

// OpenFile opens a record file and verifies its geometry.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.Size() != fileSize {
		f.Close()
		return nil, fmt.Errorf("wordlist: %s is %d bytes, want %d", path, fi.Size(), fileSize)
	}
	return &File{f: f}, nil
}

// ReadWord implements RecordReader.
func (s *File) ReadWord(ix Index, buf []byte) (int, error) {
	checkIndex(ix)
	if _, err := s.f.ReadAt(buf[:MaxWordLen], int64(ix)*MaxWordLen); err != nil {
		return 0, err
	}
	n := MaxWordLen
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return n, nil
}

// Close releases the underlying file.
func (s *File) Close() error { return s.f.Close() }

// WriteFile provisions a record file from any source, typically to stage a
// vocabulary onto external media.
func WriteFile(path string, src Source) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	var rec [MaxWordLen]byte
	for i := 0; i < Count; i++ {
		w, err := src.WordAt(Index(i))
		if err != nil {
			f.Close()
			return err
		}
		if len(w) > MaxWordLen {
			f.Close()
			return fmt.Errorf("wordlist: word %d %q longer than %d bytes", i, w, MaxWordLen)
		}
		rec = [MaxWordLen]byte{}
		copy(rec[:], w)
		if _, err := f.Write(rec[:]); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
