// typeracer is a terminal typing game: words scroll across the screen and
// must be typed before they escape.
//
// Usage:
//
//	typeracer                - Play (same as "typeracer play")
//	typeracer play           - Play
//	typeracer scores         - Show the best recorded sessions
//	typeracer words          - Show the dictionary by word length
//	typeracer serve          - Start SSH server for remote play
//	typeracer config         - Print the default racer config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set session history path (default: ~/.typeracer/sessions.db)
//	--words <path>      - Use a word list file instead of the built-in one
//	--high-score <path> - High score file (default: ~/.typeracer/high_score.txt)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagWords      string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typeracer",
	Short: "Typeracer - type the words before they cross the screen",
	Long: `Typeracer is a terminal typing game. Words scroll in from the right;
type one and press Enter or Space to clear it. Longer and faster words
score more. Every word that escapes on the left costs a life.

Available commands:
  play     - Play (default)
  scores   - View the best sessions
  words    - Inspect the dictionary
  serve    - Start SSH server for remote play
  config   - Print or install the default config

Examples:
  typeracer
  typeracer --difficulty hard
  typeracer --words ./my-words.txt
  typeracer scores --browse
  typeracer serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.typeracer/sessions.db", "Path to session history database")
	pf.StringVar(&flagWords, "words", "", "Word list file, one word per line (default: built-in English list)")
	pf.StringVar(&flagHighScore, "high-score", "~/.typeracer/high_score.txt", "Path to high score file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(serveCmd)
}
