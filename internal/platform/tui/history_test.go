package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typeracer/internal/stats"
	"github.com/vovakirdan/typeracer/internal/storage"
)

func openHistoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(score int) stats.Report {
	return stats.Report{
		Trials: []stats.Trial{
			{WordNo: 1, Word: "cat", Time: 1.5, WPM: 24, Accuracy: 100},
			{WordNo: 2, Word: "horse", Time: 2.0, WPM: 30, Accuracy: 83.3},
		},
		TotalScore: score,
		Duration:   12.5,
		MaxCombo:   2,
		Level:      3,
	}
}

func TestSessionSinkSavesToStore(t *testing.T) {
	store := openHistoryStore(t)
	dir := t.TempDir()
	logger := log.New(os.Stderr)
	logger.SetLevel(log.ErrorLevel)

	sink := &SessionSink{
		ReportDir:  dir,
		ReportName: "run.csv",
		Store:      store,
		Player:     "alice",
		Logger:     logger,
	}
	sink.Flush(context.Background(), sampleReport(420))

	if _, err := os.Stat(filepath.Join(dir, "run.csv")); err != nil {
		t.Errorf("report not written: %v", err)
	}

	sessions, err := store.TopSessions(context.Background(), 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Score != 420 || sessions[0].Player != "alice" {
		t.Errorf("session = %+v", sessions[0])
	}
}

func TestSessionSinkFixedClock(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	sink := &SessionSink{ReportDir: dir, now: func() time.Time { return at }}
	sink.Flush(context.Background(), sampleReport(10))

	if _, err := os.Stat(filepath.Join(dir, stats.DefaultFilename(at))); err != nil {
		t.Errorf("timestamped report missing: %v", err)
	}
}

func TestHistoryModelShowsSessions(t *testing.T) {
	store := openHistoryStore(t)
	ctx := context.Background()
	for _, score := range []int{150, 900} {
		if _, err := store.SaveSession(ctx, "bob", sampleReport(score)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 120, 30)
	if len(m.sessions) != 2 {
		t.Fatalf("loaded %d sessions, want 2", len(m.sessions))
	}
	if m.sessions[0].Score != 900 {
		t.Errorf("best session first: got score %d", m.sessions[0].Score)
	}
	if view := m.View(); !strings.Contains(view, "900") {
		t.Error("view should list the best score")
	}
}

func TestHistoryModelOpensTrials(t *testing.T) {
	store := openHistoryStore(t)
	if _, err := store.SaveSession(context.Background(), "bob", sampleReport(300)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	m := NewHistoryModel(store, 120, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)

	if len(m.trials) != 2 {
		t.Fatalf("opened %d trials, want 2", len(m.trials))
	}
	if !strings.Contains(m.View(), "horse") {
		t.Error("trial view should list typed words")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	if m.trials != nil {
		t.Error("esc should return to the session list")
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if len(m.sessions) != 0 {
		t.Error("nil store should show no sessions")
	}
	if m.View() == "" {
		t.Error("view should render")
	}
}
