// Package racer implements the typing racer: words scroll in from the right
// and must be typed before they leave the screen on the left.
package racer

// Word is a word travelling across the playfield.
type Word struct {
	Text      string
	Speed     int     // 1..3, multiplies the per-tick step
	X         float64 // Left edge, in screen cells
	Y         float64 // Row, in screen cells
	SpawnTick int     // Play tick the wave was spawned
	ShownTick int     // Play tick the word first entered the screen, -1 before that
}

// Points is the score awarded for typing the word.
func (w Word) Points() int {
	return w.Speed * len(w.Text) * 10
}

// Row returns the screen row the word is drawn on.
func (w Word) Row() int {
	return int(w.Y)
}

// Visible reports whether any part of the word is inside a screen of the given width.
func (w Word) Visible(screenW int) bool {
	return w.X < float64(screenW) && w.X+float64(len(w.Text)) > 0
}
