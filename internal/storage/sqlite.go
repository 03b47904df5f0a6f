// Package storage keeps a history of finished typing sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/typeracer/internal/stats"
)

// Store manages the SQLite database connection for session history.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// SessionEntry is one finished session.
type SessionEntry struct {
	ID          int64
	Player      string
	Score       int
	Duration    float64 // Seconds
	MaxCombo    int
	Level       int
	WordsTyped  int
	AvgWPM      float64
	AvgAccuracy float64
	CreatedAt   time.Time
}

// Summary aggregates all recorded sessions.
type Summary struct {
	Sessions   int
	BestScore  int
	AvgScore   float64
	WordsTyped int
	AvgWPM     float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share the store
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			words_typed INTEGER NOT NULL DEFAULT 0,
			avg_wpm REAL NOT NULL DEFAULT 0,
			avg_accuracy REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);

		CREATE TABLE IF NOT EXISTS trials (
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			word_no INTEGER NOT NULL,
			word TEXT NOT NULL,
			time_secs REAL NOT NULL,
			wpm REAL NOT NULL,
			accuracy REAL NOT NULL,
			PRIMARY KEY (session_id, word_no)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and its trials in one transaction.
// Returns the ID of the inserted session.
func (s *Store) SaveSession(ctx context.Context, player string, r stats.Report) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	wpm, accuracy := averages(r.Trials)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (player, score, duration_secs, max_combo, level, words_typed, avg_wpm, avg_accuracy)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		player, r.TotalScore, r.Duration, r.MaxCombo, r.Level, len(r.Trials), wpm, accuracy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if len(r.Trials) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO trials (session_id, word_no, word, time_secs, wpm, accuracy)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot prepare trial insert: %w", err)
		}
		defer stmt.Close()

		for _, t := range r.Trials {
			if _, err := stmt.ExecContext(ctx, id, t.WordNo, t.Word, t.Time, t.WPM, t.Accuracy); err != nil {
				return 0, fmt.Errorf("storage: cannot save trial %d: %w", t.WordNo, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return id, nil
}

// averages returns the mean WPM and accuracy over trials.
func averages(trials []stats.Trial) (wpm, accuracy float64) {
	if len(trials) == 0 {
		return 0, 0
	}
	for _, t := range trials {
		wpm += t.WPM
		accuracy += t.Accuracy
	}
	n := float64(len(trials))
	return wpm / n, accuracy / n
}

const sessionColumns = `id, player, score, duration_secs, max_combo, level, words_typed, avg_wpm, avg_accuracy, created_at`

// TopSessions returns the N best sessions, highest score first.
func (s *Store) TopSessions(ctx context.Context, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// RecentSessions returns the N most recent sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions ORDER BY id DESC LIMIT ?`, limit)
}

func (s *Store) querySessions(ctx context.Context, query string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Duration, &e.MaxCombo, &e.Level,
			&e.WordsTyped, &e.AvgWPM, &e.AvgAccuracy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SessionTrials returns the trials of a session in typing order.
func (s *Store) SessionTrials(ctx context.Context, sessionID int64) ([]stats.Trial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word_no, word, time_secs, wpm, accuracy
		 FROM trials
		 WHERE session_id = ?
		 ORDER BY word_no`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trials: %w", err)
	}
	defer rows.Close()

	var trials []stats.Trial
	for rows.Next() {
		var t stats.Trial
		if err := rows.Scan(&t.WordNo, &t.Word, &t.Time, &t.WPM, &t.Accuracy); err != nil {
			return nil, fmt.Errorf("storage: cannot scan trial: %w", err)
		}
		trials = append(trials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return trials, nil
}

// BestScore returns the highest recorded session score, or 0.
func (s *Store) BestScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM sessions").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Summary aggregates every recorded session.
func (s *Store) Summary(ctx context.Context) (*Summary, error) {
	sum := &Summary{}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(words_typed), 0), COALESCE(AVG(NULLIF(avg_wpm, 0)), 0)
		 FROM sessions`,
	).Scan(&sum.Sessions, &sum.BestScore, &sum.AvgScore, &sum.WordsTyped, &sum.AvgWPM)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at FROM sessions ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTimestamp(lastPlayed)
	}
	return sum, nil
}

// ClearSessions deletes the whole history.
func (s *Store) ClearSessions(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM trials"); err != nil {
		return fmt.Errorf("storage: cannot clear trials: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles both driver representations of DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
