package highscore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "high_score.txt"))
	if got := f.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"garbage", "not a number", 0},
		{"negative", "-5", 0},
		{"empty", "", 0},
		{"trailing newline", "420\n", 420},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := New(path).Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSaveIfHigher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "high_score.txt")
	f := New(path)

	saved, err := f.SaveIfHigher(150)
	if err != nil || !saved {
		t.Fatalf("SaveIfHigher(150) = %v, %v; want true, nil", saved, err)
	}

	saved, err = f.SaveIfHigher(90)
	if err != nil || saved {
		t.Fatalf("SaveIfHigher(90) = %v, %v; want false, nil", saved, err)
	}
	saved, _ = f.SaveIfHigher(150)
	if saved {
		t.Error("equal score should not overwrite")
	}
	if got := f.Load(); got != 150 {
		t.Errorf("Load() = %d, want 150", got)
	}

	if saved, _ := f.SaveIfHigher(200); !saved {
		t.Error("higher score should overwrite")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "200" {
		t.Errorf("file content = %q, want %q", data, "200")
	}
}

func TestSaveIfHigherConcurrent(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "high_score.txt"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, _ = f.SaveIfHigher(score * 10)
		}(i)
	}
	wg.Wait()

	if got := f.Load(); got != 200 {
		t.Errorf("Load() = %d, want 200", got)
	}
}
