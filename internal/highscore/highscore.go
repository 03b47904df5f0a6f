// Package highscore keeps the all-time best score as a single integer in a
// plain text file.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// File is a high score stored at Path. It is safe for concurrent use by
// the game sessions of one process.
type File struct {
	Path string

	mu sync.Mutex
}

// New returns a high score file at path.
func New(path string) *File {
	return &File{Path: path}
}

// Load returns the stored high score. A missing or unreadable file counts as 0.
func (f *File) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// SaveIfHigher stores score when it beats the stored value and reports
// whether the file was written.
func (f *File) SaveIfHigher(score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score <= f.read() {
		return false, nil
	}

	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("highscore: create dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return false, fmt.Errorf("highscore: write %s: %w", f.Path, err)
	}
	return true, nil
}

func (f *File) read() int {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
