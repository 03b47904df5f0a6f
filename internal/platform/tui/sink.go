package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typeracer/internal/stats"
	"github.com/vovakirdan/typeracer/internal/storage"
)

// SessionSink receives finished session reports: it writes the CSV report
// and appends the session to the history database. Failures are logged and
// never interrupt the game.
type SessionSink struct {
	ReportDir  string // Directory for CSV reports; empty disables them
	ReportName string // Fixed file name; empty uses a timestamped name
	Store      *storage.Store
	Player     string
	Logger     *log.Logger

	now func() time.Time
}

// Flush persists one report.
func (s *SessionSink) Flush(ctx context.Context, r stats.Report) {
	if s == nil {
		return
	}
	logger := s.logger()

	if s.ReportDir != "" {
		path, err := stats.Export(s.ReportDir, s.ReportName, r, s.clock())
		if err != nil {
			logger.Warn("could not write session report", "error", err)
		} else {
			logger.Info("session report written", "path", path, "words", len(r.Trials))
		}
	}

	if s.Store != nil {
		id, err := s.Store.SaveSession(ctx, s.Player, r)
		if err != nil {
			logger.Warn("could not save session", "error", err)
		} else {
			logger.Debug("session saved", "id", id, "score", r.TotalScore)
		}
	}
}

func (s *SessionSink) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *SessionSink) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}
