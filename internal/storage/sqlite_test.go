package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/typeracer/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	report := stats.Report{
		Trials: []stats.Trial{
			{WordNo: 1, Word: "cat", Time: 1.5, WPM: 24, Accuracy: 100},
			{WordNo: 2, Word: "house", Time: 2, WPM: 30, Accuracy: 80},
		},
		TotalScore: 210,
		Duration:   12.5,
		MaxCombo:   2,
		Level:      3,
	}

	id, err := store.SaveSession(ctx, "alice", report)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(ctx, 5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.ID != id || s.Player != "alice" || s.Score != 210 || s.MaxCombo != 2 || s.Level != 3 {
		t.Errorf("session = %+v", s)
	}
	if s.WordsTyped != 2 || s.AvgWPM != 27 || s.AvgAccuracy != 90 {
		t.Errorf("aggregates: words=%d wpm=%v accuracy=%v", s.WordsTyped, s.AvgWPM, s.AvgAccuracy)
	}
	if s.Duration != 12.5 {
		t.Errorf("duration = %v, want 12.5", s.Duration)
	}

	trials, err := store.SessionTrials(ctx, id)
	if err != nil {
		t.Fatalf("SessionTrials() failed: %v", err)
	}
	if len(trials) != 2 || trials[0] != report.Trials[0] || trials[1] != report.Trials[1] {
		t.Errorf("trials = %+v, want %+v", trials, report.Trials)
	}
}

func TestTopSessionsOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, score := range []int{100, 50, 200, 150} {
		if _, err := store.SaveSession(ctx, "", stats.Report{TotalScore: score}); err != nil {
			t.Fatalf("SaveSession(%d) failed: %v", score, err)
		}
	}

	top, err := store.TopSessions(ctx, 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	want := []int{200, 150, 100}
	if len(top) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(top), len(want))
	}
	for i, s := range top {
		if s.Score != want[i] {
			t.Errorf("top[%d] = %d, want %d", i, s.Score, want[i])
		}
	}

	best, err := store.BestScore(ctx)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 200 {
		t.Errorf("BestScore() = %d, want 200", best)
	}
}

func TestEmptyStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	best, err := store.BestScore(ctx)
	if err != nil || best != 0 {
		t.Errorf("BestScore() = %d, %v; want 0, nil", best, err)
	}

	sum, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Sessions != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSummaryAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	reports := []stats.Report{
		{TotalScore: 100, Trials: []stats.Trial{{WordNo: 1, Word: "dog", WPM: 40, Accuracy: 100}}},
		{TotalScore: 300, Trials: []stats.Trial{
			{WordNo: 1, Word: "sun", WPM: 20, Accuracy: 100},
			{WordNo: 2, Word: "tree", WPM: 20, Accuracy: 100},
		}},
	}
	for _, r := range reports {
		if _, err := store.SaveSession(ctx, "bob", r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sum, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Sessions != 2 || sum.BestScore != 300 || sum.AvgScore != 200 || sum.WordsTyped != 3 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.AvgWPM != 30 {
		t.Errorf("AvgWPM = %v, want 30", sum.AvgWPM)
	}

	if err := store.ClearSessions(ctx); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	top, err := store.TopSessions(ctx, 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("got %d sessions after clear", len(top))
	}
}
