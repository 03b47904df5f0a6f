package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/words"
)

var (
	flagWordsSample  int
	flagWordsLengths string
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the dictionary by word length",
	Long: `Shows how many words of each length the dictionary holds and which
lengths the game can spawn. With --sample, draws words the way the game does.

Examples:
  typeracer words
  typeracer words --words ./my-words.txt
  typeracer words --sample 10 --lengths 5,6,7`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsSample, "sample", 0, "Draw this many words")
	wordsCmd.Flags().StringVar(&flagWordsLengths, "lengths", "", "Comma-separated word lengths to sample from (default: all)")
}

func runWords(_ *cobra.Command, _ []string) {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading words: %v\n", err)
		os.Exit(1)
	}

	filter, err := parseLengths(flagWordsLengths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dictionary: %d words\n", catalog.Len())
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %s\n", "Length", "Count", "Spawns")
	fmt.Printf("  %-6s  %-6s  %s\n", "------", "-----", "------")
	for _, r := range catalog.Ranges() {
		spawns := "no"
		if b := words.BucketForLength(r.Length); b >= 0 && filter.Enabled(b) {
			spawns = "yes"
		}
		fmt.Printf("  %-6d  %-6d  %s\n", r.Length, r.Size(), spawns)
	}

	if flagWordsSample <= 0 {
		return
	}
	if len(catalog.Selectable(filter)) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no words match the selected lengths")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sample := make([]string, flagWordsSample)
	for i := range sample {
		sample[i] = catalog.Sample(rng, filter)
	}
	fmt.Println()
	fmt.Println(strings.Join(sample, " "))
}

// parseLengths turns "5,6,7" into a filter; empty enables every bucket.
func parseLengths(s string) (words.LengthFilter, error) {
	var f words.LengthFilter
	if strings.TrimSpace(s) == "" {
		for i := range f {
			f[i] = true
		}
		return f, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return f, fmt.Errorf("invalid length %q", part)
		}
		b := words.BucketForLength(n)
		if b < 0 {
			return f, fmt.Errorf("length %d is not playable (want 2-8)", n)
		}
		f[b] = true
	}
	return f, nil
}
