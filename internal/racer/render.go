package racer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/words"
)

const (
	heartChar = '♥'
	ruleChar  = '─'
	cursor    = '_'
)

var speedColors = [...]core.Color{
	1: core.ColorGreen,
	2: core.ColorYellow,
	3: core.ColorRed,
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying:
		g.renderPlayfield(dst)
	case StatePaused:
		g.renderPlayfield(dst)
		g.renderPauseOverlay(dst)
	case StateGameOver:
		g.renderPlayfield(dst)
		dst.DrawTextCentered(dst.Height()/2, " GAME OVER ", core.ColorBrightRed)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	y := max(h/2-5, 0)

	dst.DrawTextCentered(y, "T Y P E R A C E R", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, "Type the words before they cross the screen", core.ColorWhite)
	dst.DrawTextCentered(y+3, "Longer and faster words score more", core.ColorGray)

	dst.DrawTextCentered(y+5, fmt.Sprintf("High score: %d", g.HighScore()), core.ColorCyan)
	if g.lastScore >= 0 {
		dst.DrawTextCentered(y+6, fmt.Sprintf("Last game: %d", g.lastScore), core.ColorWhite)
	}

	dst.DrawTextCentered(y+8, "Press ENTER or SPACE to start", core.ColorBrightGreen)
	dst.DrawTextCentered(y+9, "Esc pauses  ·  q quits", core.ColorGray)
}

func (g *Game) renderPlayfield(dst *core.Screen) {
	g.renderHUD(dst)

	buffer := g.matcher.Buffer()
	for _, w := range g.words {
		g.drawWord(dst, w, buffer)
	}

	g.renderInputPanel(dst, buffer)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, fmt.Sprintf("High: %d", g.HighScore()), core.ColorCyan)
	dst.DrawTextColored(30, 0, fmt.Sprintf("Wave: %d", g.wave), core.ColorWhite)

	lives := strings.Repeat(string(heartChar), max(g.lives, 0))
	dst.DrawTextColored(42, 0, lives, core.ColorRed)
	if g.combo > 1 {
		dst.DrawTextColored(42+g.cfg.Gameplay.MaxLives+2, 0, fmt.Sprintf("x%d", g.combo), core.ColorOrange)
	}

	dst.DrawTextColored(g.layout.Pause.X, g.layout.Pause.Y, pauseLabel, core.ColorGray)
	dst.DrawHLine(0, g.field.Top-1, w, ruleChar, core.ColorGray)
}

// drawWord draws w, highlighting the prefix the player has already typed.
func (g *Game) drawWord(dst *core.Screen, w Word, buffer string) {
	x := int(math.Floor(w.X))
	y := w.Row()
	color := speedColors[core.Clamp(w.Speed, 1, 3)]

	typed := 0
	if buffer != "" && strings.HasPrefix(w.Text, buffer) {
		typed = len(buffer)
	}
	dst.DrawTextColored(x, y, w.Text[:typed], core.ColorBrightGreen)
	dst.DrawTextColored(x+typed, y, w.Text[typed:], color)
}

func (g *Game) renderInputPanel(dst *core.Screen, buffer string) {
	y := g.field.Bottom
	dst.DrawHLine(0, y, dst.Width(), ruleChar, core.ColorGray)

	color := core.ColorBrightWhite
	if g.missFlash > 0 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(1, y+1, "> "+buffer+string(cursor), color)

	dst.DrawTextColored(1, y+2, "Lengths: "+g.filter.String(), core.ColorGray)
}

func (g *Game) renderPauseOverlay(dst *core.Screen) {
	p := g.layout.Panel
	dst.DrawRect(p, ' ')
	dst.DrawBox(p, core.ColorCyan)

	dst.DrawTextCentered(p.Y+2, "PAUSED", core.ColorBrightYellow)
	dst.DrawTextCentered(p.Y+4, "Word lengths", core.ColorWhite)

	for i, r := range g.layout.Lengths {
		color := core.ColorGray
		if g.filter.Enabled(i) {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(r.X, r.Y, fmt.Sprintf("[%d]", words.BucketLength(i)), color)
	}
	dst.DrawTextCentered(p.Y+6, "press 2-8 or click to toggle", core.ColorGray)

	dst.DrawTextColored(g.layout.Resume.X, g.layout.Resume.Y, resumeLabel, core.ColorBrightGreen)
	dst.DrawTextColored(g.layout.Quit.X, g.layout.Quit.Y, quitLabel, core.ColorBrightRed)
	dst.DrawTextCentered(p.Y+10, "Esc resume  ·  q quit", core.ColorGray)
}
