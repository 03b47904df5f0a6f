package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/en.txt
var embeddedEnglish []byte

// Default returns a catalog built from the embedded English word list.
func Default() (*Catalog, error) {
	raw, err := ReadWords(bytes.NewReader(embeddedEnglish))
	if err != nil {
		return nil, fmt.Errorf("words: read embedded list: %w", err)
	}
	return Load(Normalize(raw))
}

// LoadFile builds a catalog from a file with one word per line.
// Entries that are not plain ASCII words of at least MinBucketLength letters are skipped.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer file.Close()

	raw, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	cat, err := Load(Normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return cat, nil
}

// ReadWords reads one word per line, skipping blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize lowercases entries and keeps only ASCII a-z words of at least
// MinBucketLength letters. Duplicates are dropped, first occurrence wins.
func Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < MinBucketLength || !isLowerAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
