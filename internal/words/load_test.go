package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	raw := []string{"Cat", " dog ", "a", "naïve", "ice-cream", "CAT", "tree", "x1"}
	got := Normalize(raw)
	want := []string{"cat", "dog", "tree"}

	if len(got) != len(want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Normalize()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadWordsSkipsBlankLines(t *testing.T) {
	got, err := ReadWords(strings.NewReader("cat\n\n  dog  \r\n\nbird\n"))
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	want := []string{"cat", "dog", "bird"}
	if len(got) != len(want) {
		t.Fatalf("ReadWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReadWords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("Apple\nbe\n\ncat\n42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
	if cat.Word(0) != "be" {
		t.Errorf("shortest word = %q, want %q", cat.Word(0), "be")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n1\n-\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("LoadFile(empty) error = %v, want ErrEmpty", err)
	}
}

func TestDefaultCoversEveryBucket(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for i := 0; i < BucketCount; i++ {
		if _, ok := cat.RangeFor(BucketLength(i)); !ok {
			t.Errorf("embedded list has no words of length %d", BucketLength(i))
		}
	}
}
