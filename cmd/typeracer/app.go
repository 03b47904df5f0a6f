package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/highscore"
	"github.com/vovakirdan/typeracer/internal/storage"
	"github.com/vovakirdan/typeracer/internal/words"
)

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.typeracer/typeracer.log for appending. The terminal
// belongs to the game while it runs, so logs go there instead of stderr.
func openLogFile() (*os.File, error) {
	dir, err := appDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "typeracer.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// appDir returns ~/.typeracer.
func appDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, config.AppDir), nil
}

// loadCatalog loads the dictionary from --words or the built-in list.
func loadCatalog() (*words.Catalog, error) {
	if flagWords == "" {
		return words.Default()
	}
	path, err := config.ExpandHome(flagWords)
	if err != nil {
		return nil, err
	}
	return words.LoadFile(path)
}

// loadRacerConfig loads the racer config and applies --difficulty.
func loadRacerConfig() (config.RacerConfig, error) {
	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return config.RacerConfig{}, err
	}
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.RacerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyRacerPreset(&cfg, preset)
	return cfg, nil
}

// openHighScore returns the high score file named by --high-score.
func openHighScore() (*highscore.File, error) {
	path, err := config.ExpandHome(flagHighScore)
	if err != nil {
		return nil, err
	}
	return highscore.New(path), nil
}

// openStore opens the session history. The game works without it, so a
// failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session history", "error", err)
		return nil
	}
	return store
}

// playerName identifies the local player in the session history.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
