// Package words holds the dictionary of the typing racer: a catalog of
// words grouped into contiguous ranges by length, and the length filter the
// player toggles to choose which ranges new words are drawn from.
package words

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmpty is returned when a catalog is built from no words.
var ErrEmpty = errors.New("words: dictionary is empty")

// InvalidWordError reports a dictionary entry that is not lowercase a-z.
type InvalidWordError struct {
	Index int
	Word  string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("words: entry %d (%q) is not a lowercase alphabetic word", e.Index, e.Word)
}

// Rand is the subset of *math/rand.Rand the catalog and level generator need.
// Tests inject a seeded source to make selection deterministic.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Range is the half-open index span [Start, End) of catalog words sharing one length.
type Range struct {
	Length int
	Start  int
	End    int
}

// Size returns the number of words in the range.
func (r Range) Size() int {
	return r.End - r.Start
}

// Catalog is an immutable word list sorted by length with a length index.
type Catalog struct {
	words  []string
	ranges []Range
}

// Load builds a catalog from a non-empty list of lowercase alphabetic words.
// The input slice is not modified.
func Load(source []string) (*Catalog, error) {
	if len(source) == 0 {
		return nil, ErrEmpty
	}
	for i, w := range source {
		if !isLowerAlpha(w) {
			return nil, &InvalidWordError{Index: i, Word: w}
		}
	}

	sorted := make([]string, len(source))
	copy(sorted, source)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})

	// Single scan: close a range whenever the length changes
	var ranges []Range
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || len(sorted[i]) != len(sorted[start]) {
			ranges = append(ranges, Range{Length: len(sorted[start]), Start: start, End: i})
			start = i
		}
	}

	return &Catalog{words: sorted, ranges: ranges}, nil
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Word returns the word at index i.
func (c *Catalog) Word(i int) string {
	return c.words[i]
}

// Words returns a copy of the catalog words in length order.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Ranges returns a copy of the length ranges, shortest first.
func (c *Catalog) Ranges() []Range {
	out := make([]Range, len(c.ranges))
	copy(out, c.ranges)
	return out
}

// RangeFor returns the range holding words of the given length.
func (c *Catalog) RangeFor(length int) (Range, bool) {
	i := sort.Search(len(c.ranges), func(i int) bool {
		return c.ranges[i].Length >= length
	})
	if i < len(c.ranges) && c.ranges[i].Length == length {
		return c.ranges[i], true
	}
	return Range{}, false
}

// Sample picks a random word: first a range uniformly among the filter's
// enabled lengths that exist in the catalog, then a word uniformly within it.
// With nothing selectable it falls back to the shortest range.
func (c *Catalog) Sample(rng Rand, filter LengthFilter) string {
	candidates := c.Selectable(filter)
	if len(candidates) == 0 {
		candidates = c.ranges[:1]
	}
	r := candidates[rng.Intn(len(candidates))]
	return c.words[r.Start+rng.Intn(r.Size())]
}

// Selectable returns the non-empty ranges matching the filter's enabled buckets.
func (c *Catalog) Selectable(filter LengthFilter) []Range {
	var out []Range
	for _, length := range filter.Lengths() {
		if r, ok := c.RangeFor(length); ok {
			out = append(out, r)
		}
	}
	return out
}

func isLowerAlpha(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
