package racer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/words"
)

func TestGenerateLevel(t *testing.T) {
	cat := testCatalog(t)
	field := NewField(80, 24, config.DefaultRacerConfig().World)
	rng := rand.New(rand.NewSource(3))

	var filter words.LengthFilter
	filter.Toggle(words.BucketForLength(3))
	filter.Toggle(words.BucketForLength(5))

	for level := 1; level <= 8; level++ {
		wave := GenerateLevel(rng, level, filter, cat, field)
		if len(wave) != level {
			t.Fatalf("level %d: got %d words", level, len(wave))
		}

		band := float64(field.Rows()) / float64(level)
		for i, w := range wave {
			if w.Speed < 1 || w.Speed > 3 {
				t.Errorf("level %d word %d: speed %d out of range", level, i, w.Speed)
			}
			if l := len(w.Text); l != 3 && l != 5 {
				t.Errorf("level %d word %d: %q not in enabled lengths", level, i, w.Text)
			}
			if w.X < field.SpawnMinX {
				t.Errorf("level %d word %d: x %.2f left of the spawn range", level, i, w.X)
			}
			if !sharesRow(wave[:i], w) && w.X > field.SpawnMaxX {
				t.Errorf("level %d word %d: x %.2f outside spawn range", level, i, w.X)
			}
			lo := float64(field.Top) + float64(i)*band
			if w.Y < lo || w.Y >= lo+band {
				t.Errorf("level %d word %d: y %.2f outside band [%.2f, %.2f)", level, i, w.Y, lo, lo+band)
			}
			if w.ShownTick != -1 {
				t.Errorf("new word should not be shown yet")
			}
		}
	}
}

func sharesRow(ahead []Word, w Word) bool {
	for _, a := range ahead {
		if a.Row() == w.Row() {
			return true
		}
	}
	return false
}

func TestGenerateLevelLargerThanField(t *testing.T) {
	cat := testCatalog(t)
	field := NewField(80, 23, config.DefaultRacerConfig().World)
	rng := rand.New(rand.NewSource(5))
	filter := words.DefaultFilter()
	filter.Toggle(words.BucketForLength(5))

	const level = 20
	if level <= field.Rows() {
		t.Fatalf("field has %d rows, need fewer than %d", field.Rows(), level)
	}
	wave := GenerateLevel(rng, level, filter, cat, field)
	if len(wave) != level {
		t.Fatalf("got %d words, want %d", len(wave), level)
	}

	// Move the wave until every word has left; words on one row must never overlap.
	const step = 0.5
	for tick := 0; len(wave) > 0; tick++ {
		if tick > 100000 {
			t.Fatal("wave never left the field")
		}
		kept := wave[:0]
		for _, w := range wave {
			w.X -= float64(w.Speed) * step
			if w.X >= field.ExitX {
				kept = append(kept, w)
			}
		}
		wave = kept

		for i, a := range wave {
			for _, b := range wave[i+1:] {
				if a.Row() != b.Row() {
					continue
				}
				if a.X < b.X+float64(len(b.Text)) && b.X < a.X+float64(len(a.Text)) {
					t.Fatalf("tick %d: %q at %.2f overlaps %q at %.2f on row %d",
						tick, a.Text, a.X, b.Text, b.X, a.Row())
				}
			}
		}
	}
}

func TestGenerateLevelFallback(t *testing.T) {
	cat := testCatalog(t)
	field := NewField(80, 24, config.DefaultRacerConfig().World)
	rng := rand.New(rand.NewSource(11))

	var filter words.LengthFilter
	filter.Toggle(words.BucketForLength(8)) // no 8-letter words in the test catalog

	for _, w := range GenerateLevel(rng, 5, filter, cat, field) {
		if len(w.Text) != 2 {
			t.Errorf("fallback word %q, want a 2-letter word", w.Text)
		}
	}

	if wave := GenerateLevel(rng, 0, filter, cat, field); len(wave) != 0 {
		t.Errorf("level 0 produced %d words", len(wave))
	}
}

func TestNewField(t *testing.T) {
	world := config.DefaultRacerConfig().World
	f := NewField(100, 30, world)

	if f.Top != world.TopMargin || f.Bottom != 30-world.BottomMargin {
		t.Errorf("rows = [%d, %d)", f.Top, f.Bottom)
	}
	if f.SpawnMinX != 100 || f.SpawnMaxX != float64(100+world.SpawnSpread) {
		t.Errorf("spawn = [%.0f, %.0f]", f.SpawnMinX, f.SpawnMaxX)
	}
	if f.ExitX != world.ExitX {
		t.Errorf("exit = %.0f, want %.0f", f.ExitX, world.ExitX)
	}

	tiny := NewField(10, 3, world)
	if tiny.Rows() < 1 {
		t.Errorf("tiny field has %d rows", tiny.Rows())
	}
}
