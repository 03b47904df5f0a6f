package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typeracer/internal/platform/tui"
	"github.com/vovakirdan/typeracer/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresBrowse bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded sessions",
	Long: `Display the best sessions from the session history along with
the high score file.

Examples:
  typeracer scores
  typeracer scores --recent --limit 20
  typeracer scores --browse
  typeracer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive history browser")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the session history")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	if flagScoresClear {
		if err := store.ClearSessions(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	if flagScoresBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionEntry
	title := "Best Sessions"
	if flagScoresRecent {
		title = "Recent Sessions"
		sessions, err = store.RecentSessions(ctx, flagScoresLimit)
	} else {
		sessions, err = store.TopSessions(ctx, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'typeracer' to play your first session!")
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-6s  %-12s  %s\n",
			"Rank", "Score", "Level", "Words", "WPM", "Acc", "Player", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-6s  %-12s  %s\n",
			"----", "-----", "-----", "-----", "---", "---", "------", "----")
		for i, s := range sessions {
			fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6.1f  %-6s  %-12s  %s\n",
				i+1, s.Score, s.Level, s.WordsTyped, s.AvgWPM,
				fmt.Sprintf("%.0f%%", s.AvgAccuracy), s.Player,
				s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	if summary, err := store.Summary(ctx); err == nil && summary.Sessions > 0 {
		fmt.Printf("Sessions: %d  Words: %d  Avg score: %.0f  Avg WPM: %.1f\n",
			summary.Sessions, summary.WordsTyped, summary.AvgScore, summary.AvgWPM)
	}
	if hs, err := openHighScore(); err == nil {
		fmt.Printf("High score: %d\n", hs.Load())
	}
}
