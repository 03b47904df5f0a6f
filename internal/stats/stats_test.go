package stats

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecordNumbersTrials(t *testing.T) {
	r := NewRecorder()
	first := r.Record("cat", 2*time.Second, 3)
	second := r.Record("house", time.Second, 7)

	if first.WordNo != 1 || second.WordNo != 2 {
		t.Errorf("WordNo = %d, %d; want 1, 2", first.WordNo, second.WordNo)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
	if again := r.Record("dog", time.Second, 3); again.WordNo != 1 {
		t.Errorf("WordNo after Reset = %d, want 1", again.WordNo)
	}
}

func TestWPM(t *testing.T) {
	tests := []struct {
		chars   int
		elapsed time.Duration
		want    float64
	}{
		{5, time.Minute, 1},
		{5, 6 * time.Second, 10},
		{3, 2 * time.Second, 18},
		{4, 0, 0},
	}
	for _, tt := range tests {
		if got := WPM(tt.chars, tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WPM(%d, %v) = %v, want %v", tt.chars, tt.elapsed, got, tt.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		length, keystrokes int
		want               float64
	}{
		{3, 3, 100},
		{3, 6, 50},
		{4, 5, 80},
		{3, 0, 100},
		{5, 2, 100},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.length, tt.keystrokes); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Accuracy(%d, %d) = %v, want %v", tt.length, tt.keystrokes, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	report := Report{
		Trials: []Trial{
			{WordNo: 1, Word: "cat", Time: 1.234, WPM: 45.61, Accuracy: 100},
		},
		TotalScore: 60,
		Duration:   10,
		MaxCombo:   1,
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, report); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := strings.Join([]string{
		"Word No,Word,Time (s),WPM,Accuracy (%)",
		"1,cat,1.23,45.6,100.0",
		"",
		"Total Score,60",
		"Session Duration (s),10.00",
		"Max Combo,1",
		"",
	}, "\r\n")
	if buf.String() != want {
		t.Errorf("WriteCSV output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExportDefaultFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	path, err := Export(dir, "", Report{TotalScore: 10}, now)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Base(path) != "session_20240309_140507.csv" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Total Score,10") {
		t.Errorf("report missing total score:\n%s", data)
	}
}

func TestExportCustomFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(dir, "mine.csv", Report{}, time.Now())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path != filepath.Join(dir, "mine.csv") {
		t.Errorf("path = %q", path)
	}
}
