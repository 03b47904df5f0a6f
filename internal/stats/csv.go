package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var header = []string{"Word No", "Word", "Time (s)", "WPM", "Accuracy (%)"}

// WriteCSV writes the report as a spreadsheet-friendly table: one row per
// trial, a blank row, then the session totals. Rows end in CRLF.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	rows := make([][]string, 0, len(r.Trials)+5)
	rows = append(rows, header)
	for _, t := range r.Trials {
		rows = append(rows, []string{
			strconv.Itoa(t.WordNo),
			t.Word,
			strconv.FormatFloat(t.Time, 'f', 2, 64),
			strconv.FormatFloat(t.WPM, 'f', 1, 64),
			strconv.FormatFloat(t.Accuracy, 'f', 1, 64),
		})
	}
	rows = append(rows,
		[]string{},
		[]string{"Total Score", strconv.Itoa(r.TotalScore)},
		[]string{"Session Duration (s)", strconv.FormatFloat(r.Duration, 'f', 2, 64)},
		[]string{"Max Combo", strconv.Itoa(r.MaxCombo)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("stats: write csv: %w", err)
	}
	return nil
}

// DefaultFilename returns the report name for a session ending at now.
func DefaultFilename(now time.Time) string {
	return "session_" + now.Format("20060102_150405") + ".csv"
}

// Export writes the report to dir/filename, creating dir if needed.
// An empty filename selects DefaultFilename(now). Returns the written path.
func Export(dir, filename string, r Report, now time.Time) (string, error) {
	if filename == "" {
		filename = DefaultFilename(now)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("stats: create report dir: %w", err)
		}
	}
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("stats: create report: %w", err)
	}
	if err := WriteCSV(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("stats: close report: %w", err)
	}
	return path, nil
}
