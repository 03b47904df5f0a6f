package racer

import (
	"strings"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/words"
)

// Field is the part of the screen words travel through.
type Field struct {
	Top       int     // First playable row
	Bottom    int     // Row after the last playable row
	SpawnMinX float64 // Words spawn with X in [SpawnMinX, SpawnMaxX]
	SpawnMaxX float64
	ExitX     float64 // Words are gone once X drops below this
}

// NewField derives the playfield from the screen size and world settings.
func NewField(screenW, screenH int, world config.RacerWorld) Field {
	top := world.TopMargin
	bottom := screenH - world.BottomMargin
	if bottom <= top {
		bottom = top + 1
	}
	return Field{
		Top:       top,
		Bottom:    bottom,
		SpawnMinX: float64(screenW),
		SpawnMaxX: float64(screenW + world.SpawnSpread),
		ExitX:     world.ExitX,
	}
}

// Rows returns the number of playable rows.
func (f Field) Rows() int {
	return f.Bottom - f.Top
}

// GenerateLevel creates the wave for the given level: exactly level words,
// each in its own horizontal band of the field so they do not overlap
// vertically, all spawned off-screen to the right.
func GenerateLevel(rng words.Rand, level int, filter words.LengthFilter, catalog *words.Catalog, field Field) []Word {
	if level <= 0 {
		return nil
	}

	band := float64(field.Rows()) / float64(level)
	spread := field.SpawnMaxX - field.SpawnMinX

	out := make([]Word, level)
	for i := range out {
		text := strings.ToLower(catalog.Sample(rng, filter))
		speed := 1 + rng.Intn(3)
		x := field.SpawnMinX + rng.Float64()*spread
		y := float64(field.Top) + (float64(i)+rng.Float64())*band
		out[i] = Word{
			Text:      text,
			Speed:     speed,
			X:         x,
			Y:         y,
			ShownTick: -1,
		}
	}
	queueSharedRows(out, field.ExitX)
	return out
}

// queueSharedRows handles waves larger than the field: bands thinner than a
// row put several words on one screen row. Each such word is moved right of
// the words ahead of it on that row, far enough that it cannot catch up with
// them before they leave the field.
func queueSharedRows(wave []Word, exitX float64) {
	for i := range wave {
		for j := range i {
			ahead := wave[j]
			if ahead.Row() != wave[i].Row() {
				continue
			}
			minX := ahead.X + float64(len(ahead.Text)+1)
			if gain := wave[i].Speed - ahead.Speed; gain > 0 {
				// Distance the word ahead travels before it exits, scaled by
				// how much faster the follower moves.
				minX += float64(gain) * (ahead.X - exitX) / float64(ahead.Speed)
			}
			wave[i].X = max(wave[i].X, minX)
		}
	}
}
