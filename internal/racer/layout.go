package racer

import (
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/words"
)

// Button labels. Their widths define the clickable regions.
const (
	pauseLabel  = "[ II ]"
	resumeLabel = "[ Resume ]"
	quitLabel   = "[ Quit ]"
)

// Pause overlay geometry.
const (
	panelW = 40
	panelH = 12
)

// Layout holds the clickable regions for the current screen size.
type Layout struct {
	Pause   core.Rect
	Panel   core.Rect
	Resume  core.Rect
	Quit    core.Rect
	Lengths [words.BucketCount]core.Rect
}

// NewLayout places the HUD and pause overlay controls on a screen.
func NewLayout(w, h int) Layout {
	var l Layout
	l.Pause = core.NewRect(w-len(pauseLabel)-1, 0, len(pauseLabel), 1)

	pw := min(panelW, w)
	ph := min(panelH, h)
	l.Panel = core.NewRect((w-pw)/2, (h-ph)/2, pw, ph)

	// Length buttons: "[2]" with one column between them
	const lengthW = 3
	rowW := words.BucketCount*(lengthW+1) - 1
	x := (w - rowW) / 2
	y := l.Panel.Y + 5
	for i := range l.Lengths {
		l.Lengths[i] = core.NewRect(x+i*(lengthW+1), y, lengthW, 1)
	}

	const gap = 4
	buttonsW := len(resumeLabel) + gap + len(quitLabel)
	bx := (w - buttonsW) / 2
	by := l.Panel.Y + 8
	l.Resume = core.NewRect(bx, by, len(resumeLabel), 1)
	l.Quit = core.NewRect(bx+len(resumeLabel)+gap, by, len(quitLabel), 1)

	return l
}

// LengthAt returns the length bucket under (x, y), or -1.
func (l Layout) LengthAt(x, y int) int {
	for i, r := range l.Lengths {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
