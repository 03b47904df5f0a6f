package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeReports  string
	flagServeNoReport bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the typeracer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The high score file and the
session history are shared by all users; CSV reports are written to a
subdirectory per user.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.typeracer/host_key

Examples:
  typeracer serve                           # Listen on :23235 with auto-generated key
  typeracer serve --ssh :2222               # Listen on port 2222
  typeracer serve --host-key ./my_host_key  # Use specific host key
  typeracer serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeReports, "report-dir", "~/.typeracer/reports", "Directory for per-user CSV reports")
	serveCmd.Flags().BoolVar(&flagServeNoReport, "no-report", false, "Do not write CSV reports")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "typeracer-ssh")

	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading words: %v\n", err)
		os.Exit(1)
	}
	racerCfg, err := loadRacerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	highScores, err := openHighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportDir := ""
	if !flagServeNoReport {
		if reportDir, err = config.ExpandHome(flagServeReports); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, tui.SessionDeps{
		Catalog:    catalog,
		Racer:      racerCfg,
		HighScores: highScores,
		Store:      store,
		ReportDir:  reportDir,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	port := cfg.Address
	if i := strings.LastIndex(port, ":"); i >= 0 {
		port = port[i+1:]
	}
	fmt.Printf("Starting typeracer SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
