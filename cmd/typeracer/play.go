package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/platform/tui"
	"github.com/vovakirdan/typeracer/internal/racer"
)

var (
	flagReportDir string
	flagReport    string
	flagNoReport  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play typeracer",
	Long: `Start a game.

Controls:
  a-z          - Type
  Enter/Space  - Submit the typed word (start from the menu)
  Backspace    - Delete the last letter
  Esc          - Pause / resume
  2-8          - Toggle word lengths while paused
  Q            - Quit (menu or pause screen)
  Ctrl+C       - Quit
  Ctrl+S       - Save a screenshot

Every session ends with a CSV report of the words you typed
(time, WPM and accuracy per word) in ~/.typeracer/reports.

Difficulty options:
  easy   - 7 lives, slow words, pace grows to max
  normal - Start at 30% pace, grows to max
  hard   - 3 lives, fast words, start at 70% pace
  fixed  - Pace never changes

Examples:
  typeracer play
  typeracer play --difficulty easy
  typeracer play --report last.csv
  typeracer play --words /usr/share/dict/words --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the report flags on cmd; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagReportDir, "report-dir", "~/.typeracer/reports", "Directory for session CSV reports")
	cmd.Flags().StringVar(&flagReport, "report", "", "Report file name (default: session_<timestamp>.csv)")
	cmd.Flags().BoolVar(&flagNoReport, "no-report", false, "Do not write CSV reports")
}

func runPlay(_ *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	racerCfg, err := loadRacerConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	highScores, err := openHighScore()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger := newLogger(logOut, "typeracer")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	reportDir := ""
	if !flagNoReport {
		if reportDir, err = config.ExpandHome(flagReportDir); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := racer.New(catalog, racerCfg)
	game.SetHighScoreStore(highScores)

	screenshots := ""
	if dir, dirErr := appDir(); dirErr == nil {
		screenshots = filepath.Join(dir, "screenshots")
	}

	model := tui.NewModel(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, tui.Options{
		Sink: &tui.SessionSink{
			ReportDir:  reportDir,
			ReportName: flagReport,
			Store:      store,
			Player:     playerName(),
			Logger:     logger,
		},
		Logger:        logger,
		ScreenshotDir: screenshots,
	})

	logger.Info("game started", "words", catalog.Len(), "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	fmt.Printf("High score: %d\n", game.HighScore())
	return nil
}
