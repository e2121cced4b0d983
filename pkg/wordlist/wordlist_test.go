package wordlist_test

import (
	"errors"
	"path/filepath"
	"testing"

	"mnemo/pkg/wordlist"
)

// openFileSource stages the English table into a record file and opens it.
func openFileSource(t *testing.T) *wordlist.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "english.words")
	if err := wordlist.WriteFile(path, wordlist.English()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := wordlist.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestResident_KnownWords(t *testing.T) {
	src := wordlist.English()

	w, err := src.WordAt(0)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if w != "abandon" {
		t.Fatalf("word 0 = %q, want %q", w, "abandon")
	}
	w, err = src.WordAt(2047)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if w != "zoo" {
		t.Fatalf("word 2047 = %q, want %q", w, "zoo")
	}

	ix, ok, err := src.IndexOf("zoo")
	if err != nil || !ok {
		t.Fatalf("IndexOf(zoo) = %v, %v, %v", ix, ok, err)
	}
	if ix != 2047 {
		t.Fatalf("IndexOf(zoo) = %d, want 2047", ix)
	}
	if _, ok, _ := src.IndexOf("notaword"); ok {
		t.Fatal("IndexOf accepted an unknown word")
	}
}

func TestResident_RejectsBadTables(t *testing.T) {
	if _, err := wordlist.NewResident([]string{"abandon"}); err == nil {
		t.Fatal("accepted a short table")
	}

	full, err := wordlist.Suggest(wordlist.English(), "")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	full[1] = full[0] // introduce a duplicate
	if _, err := wordlist.NewResident(full); err == nil {
		t.Fatal("accepted a table with duplicate words")
	}
}

func TestExternal_MatchesResident(t *testing.T) {
	resident := wordlist.English()
	ext := wordlist.NewExternal(openFileSource(t))

	for i := 0; i < wordlist.Count; i++ {
		rw, err := resident.WordAt(wordlist.Index(i))
		if err != nil {
			t.Fatalf("resident WordAt(%d): %v", i, err)
		}
		ew, err := ext.WordAt(wordlist.Index(i))
		if err != nil {
			t.Fatalf("external WordAt(%d): %v", i, err)
		}
		if rw != ew {
			t.Fatalf("word %d: resident %q, external %q", i, rw, ew)
		}

		ix, ok, err := ext.IndexOf(rw)
		if err != nil || !ok {
			t.Fatalf("external IndexOf(%q) = %v, %v, %v", rw, ix, ok, err)
		}
		if int(ix) != i {
			t.Fatalf("external IndexOf(%q) = %d, want %d", rw, ix, i)
		}
	}

	if _, ok, err := ext.IndexOf("notaword"); ok || err != nil {
		t.Fatalf("external IndexOf(notaword) = %v, %v", ok, err)
	}
}

// countingReader wraps a RecordReader and counts fetches.
type countingReader struct {
	r     wordlist.RecordReader
	reads int
}

func (c *countingReader) ReadWord(ix wordlist.Index, buf []byte) (int, error) {
	c.reads++
	return c.r.ReadWord(ix, buf)
}

func TestExternal_ReverseLookupIsLogarithmic(t *testing.T) {
	cr := &countingReader{r: openFileSource(t)}
	ext := wordlist.NewExternal(cr)

	for _, word := range []string{"abandon", "legal", "zoo", "notaword"} {
		cr.reads = 0
		if _, _, err := ext.IndexOf(word); err != nil {
			t.Fatalf("IndexOf(%q): %v", word, err)
		}
		if cr.reads > 12 {
			t.Fatalf("IndexOf(%q) took %d reads, want <= 12", word, cr.reads)
		}
	}
}

// failingReader always reports a medium error.
type failingReader struct{ err error }

func (f failingReader) ReadWord(wordlist.Index, []byte) (int, error) { return 0, f.err }

func TestExternal_PropagatesReadFailures(t *testing.T) {
	cause := errors.New("bus timeout")
	ext := wordlist.NewExternal(failingReader{err: cause})

	_, err := ext.WordAt(3)
	var se *wordlist.SourceError
	if !errors.As(err, &se) {
		t.Fatalf("WordAt error = %v, want SourceError", err)
	}
	if se.Index != 3 || !errors.Is(err, cause) {
		t.Fatalf("SourceError = %+v, want index 3 wrapping cause", se)
	}

	if _, _, err := ext.IndexOf("zoo"); !errors.As(err, &se) {
		t.Fatalf("IndexOf error = %v, want SourceError", err)
	}
}

func TestSuggest(t *testing.T) {
	backings := []struct {
		name string
		src  wordlist.Source
	}{
		{"resident", wordlist.English()},
		{"external", wordlist.NewExternal(openFileSource(t))},
	}
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			got, err := wordlist.Suggest(b.src, "zo")
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			want := []string{"zone", "zoo"}
			if len(got) != len(want) {
				t.Fatalf("Suggest(zo) = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Suggest(zo) = %v, want %v", got, want)
				}
			}

			none, err := wordlist.Suggest(b.src, "zzz")
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if len(none) != 0 {
				t.Fatalf("Suggest(zzz) = %v, want none", none)
			}

			all, err := wordlist.Suggest(b.src, "")
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if len(all) != wordlist.Count {
				t.Fatalf("Suggest(\"\") returned %d words, want %d", len(all), wordlist.Count)
			}
		})
	}
}
