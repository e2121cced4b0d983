package mnemonic_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mnemo/pkg/mnemonic"
	"mnemo/pkg/wordlist"
)

func TestBuilder_WordByWord(t *testing.T) {
	src := wordlist.English()
	var b mnemonic.Builder

	words := strings.Fields(vectors[0].phrase)
	for i, w := range words {
		if got := b.Len(); got != i {
			t.Fatalf("Len = %d, want %d", got, i)
		}
		if b.Finalizable() {
			t.Fatalf("Finalizable true at %d words", i)
		}
		if err := b.AddWord(w, src); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	if !b.Finalizable() {
		t.Fatal("Finalizable false at 12 words")
	}

	var ent [mnemonic.MaxEntropySize]byte
	n, err := b.EntropyInto(ent[:])
	if err != nil {
		t.Fatalf("EntropyInto: %v", err)
	}
	if want := mustEntropy(t, vectors[0].entropy); !bytes.Equal(ent[:n], want) {
		t.Fatalf("entropy = %x, want %x", ent[:n], want)
	}

	phrase, err := b.Phrase(src)
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}
	if phrase != vectors[0].phrase {
		t.Fatalf("Phrase = %q, want %q", phrase, vectors[0].phrase)
	}

	b.Zero()
	if b.Len() != 0 || b.Finalizable() {
		t.Fatal("Zero did not reset the builder")
	}
}

func TestBuilder_RejectsUnknownWord(t *testing.T) {
	src := wordlist.English()
	var b mnemonic.Builder

	if err := b.AddWord("abandon", src); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	err := b.AddWord("zzz", src)
	var uw *mnemonic.UnknownWordError
	if !errors.As(err, &uw) {
		t.Fatalf("err = %v, want UnknownWordError", err)
	}
	if uw.Position != 1 {
		t.Fatalf("position = %d, want 1", uw.Position)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d after rejected word, want 1", b.Len())
	}
}

func TestBuilder_Overflow(t *testing.T) {
	src := wordlist.English()
	var b mnemonic.Builder

	for i := 0; i < mnemonic.MaxWords; i++ {
		if err := b.AddWord("abandon", src); err != nil {
			t.Fatalf("AddWord %d: %v", i, err)
		}
	}
	if err := b.AddWord("abandon", src); !errors.Is(err, mnemonic.ErrMnemonicLength) {
		t.Fatalf("err = %v, want ErrMnemonicLength", err)
	}
}

func TestBuilder_NotFinalizableCount(t *testing.T) {
	src := wordlist.English()
	var b mnemonic.Builder

	for i := 0; i < 13; i++ {
		if err := b.AddWord("abandon", src); err != nil {
			t.Fatalf("AddWord: %v", err)
		}
	}
	var ent [mnemonic.MaxEntropySize]byte
	if _, err := b.EntropyInto(ent[:]); !errors.Is(err, mnemonic.ErrMnemonicLength) {
		t.Fatalf("err = %v, want ErrMnemonicLength", err)
	}
}

// The codec must behave identically on an externally paged vocabulary.
func TestCodec_ExternalBackingMatchesResident(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/english.words"
	if err := wordlist.WriteFile(path, wordlist.English()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := wordlist.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	ext := wordlist.NewExternal(f)

	for _, v := range vectors {
		entropy := mustEntropy(t, v.entropy)
		phrase, err := mnemonic.EntropyToMnemonic(entropy, ext)
		if err != nil {
			t.Fatalf("EntropyToMnemonic(external): %v", err)
		}
		if phrase != v.phrase {
			t.Fatalf("external phrase %q, want %q", phrase, v.phrase)
		}
		back, err := mnemonic.MnemonicToEntropy(phrase, ext)
		if err != nil {
			t.Fatalf("MnemonicToEntropy(external): %v", err)
		}
		if !bytes.Equal(back, entropy) {
			t.Fatalf("external decode %x, want %x", back, entropy)
		}
	}
}
