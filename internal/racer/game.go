package racer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/stats"
	"github.com/vovakirdan/typeracer/internal/words"
)

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	Load() int
	SaveIfHigher(score int) (bool, error)
}

type submission struct {
	text       string
	keystrokes int
}

// Game is one player's typing racer session.
type Game struct {
	cfg        config.RacerConfig
	runtime    core.RuntimeConfig
	catalog    *words.Catalog
	rng        words.Rand
	difficulty *config.DifficultyManager
	field      Field
	layout     Layout
	recorder   *stats.Recorder
	highScores HighScoreStore

	state   State
	words   []Word
	matcher Matcher
	pending []submission
	filter  words.LengthFilter

	level     int // Size of the next wave
	wave      int // Waves spawned this session
	score     int
	lives     int
	combo     int
	maxCombo  int
	ticks     int // Ticks spent playing, pauses excluded
	missFlash int

	best      int  // Best score reached in this process
	highScore int  // Stored high score shown in the HUD
	lastScore int  // Final score of the previous session, -1 before the first
	closed    bool // The session in progress has already been reported

	events []Event
}

// New creates a game drawing words from catalog.
func New(catalog *words.Catalog, cfg config.RacerConfig) *Game {
	return &Game{
		cfg:        cfg,
		catalog:    catalog,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		recorder:   stats.NewRecorder(),
	}
}

// Reset initializes the game for a screen and seed and returns to the menu.
// A zero seed uses the current time.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(seed))
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.best = 0
	g.lastScore = -1
	g.restart()
	g.state = StateMenu
}

// SetHighScoreStore attaches persistent high score storage and loads the
// current value for display.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	g.highScores = s
	if s != nil {
		g.highScore = s.Load()
	}
}

// Resize adapts the playfield to a new screen size. Words keep their positions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.field = NewField(w, h, g.cfg.World)
	g.layout = NewLayout(w, h)
}

// restart clears all per-session state.
func (g *Game) restart() {
	g.words = nil
	g.matcher.Reset()
	g.pending = nil
	g.filter = words.DefaultFilter()
	g.level = 1
	g.wave = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.MaxLives
	g.combo = 0
	g.maxCombo = 0
	g.ticks = 0
	g.missFlash = 0
	g.closed = false
	g.recorder.Reset()
}

// fire applies a trigger through the transition table.
func (g *Game) fire(t Trigger) bool {
	next, ok := Next(g.state, t)
	if ok {
		g.state = next
	}
	return ok
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// Step advances the game by one tick, replaying the frame's input in order.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = nil
	var res StepResult

	if g.state == StateGameOver {
		res.Quit = in.Has(core.ActionQuit)
		g.restart()
		g.fire(TriggerReset)
		res.State = g.state
		return res
	}

	for _, ev := range in.Events {
		if g.handleEvent(ev) {
			res.Quit = true
			break
		}
	}

	if res.Quit {
		res.Report = g.Abandon()
		res.State = g.state
		res.Events = g.events
		return res
	}

	if g.state == StatePlaying {
		g.advance()
		if g.lives < 0 {
			g.fire(TriggerLivesExhausted)
			g.emit(Event{Kind: EventGameOver, Value: g.score})
			g.lastScore = g.score
			report := g.finish()
			res.Report = &report
		}
	}

	res.State = g.state
	res.Events = g.events
	return res
}

// handleEvent applies one input event and reports whether the player quit.
func (g *Game) handleEvent(ev core.InputEvent) bool {
	if ev.Action == core.ActionQuit {
		return true
	}

	switch g.state {
	case StateMenu:
		switch {
		case ev.Action == core.ActionCommit:
			if g.fire(TriggerStart) {
				g.emit(Event{Kind: EventStart})
			}
		case ev.Action == core.ActionRune && ev.Rune == 'q':
			return true
		}

	case StatePlaying:
		switch ev.Action {
		case core.ActionRune:
			g.matcher.Append(ev.Rune)
		case core.ActionBackspace:
			g.matcher.Backspace()
		case core.ActionCommit:
			ks := g.matcher.Keystrokes()
			g.pending = append(g.pending, submission{text: g.matcher.Commit(), keystrokes: ks})
		case core.ActionPause:
			g.pause()
		case core.ActionClick:
			if g.layout.Pause.Contains(ev.X, ev.Y) {
				g.pause()
			}
		}

	case StatePaused:
		switch ev.Action {
		case core.ActionPause:
			g.resume()
		case core.ActionRune:
			if ev.Rune == 'q' {
				return true
			}
			if ev.Rune >= '0' && ev.Rune <= '9' {
				g.toggleLength(words.BucketForLength(int(ev.Rune - '0')))
			}
		case core.ActionClick:
			switch {
			case g.layout.Resume.Contains(ev.X, ev.Y):
				g.resume()
			case g.layout.Quit.Contains(ev.X, ev.Y):
				return true
			default:
				g.toggleLength(g.layout.LengthAt(ev.X, ev.Y))
			}
		}
	}
	return false
}

func (g *Game) pause() {
	if g.fire(TriggerPause) {
		g.emit(Event{Kind: EventPause})
	}
}

func (g *Game) resume() {
	if g.fire(TriggerResume) {
		g.emit(Event{Kind: EventResume})
	}
}

func (g *Game) toggleLength(bucket int) {
	if bucket < 0 {
		return
	}
	g.filter.Toggle(bucket)
	g.emit(Event{Kind: EventFilter, Value: bucket})
}

// advance runs one tick of play: spawn, move, expire, then score submissions.
func (g *Game) advance() {
	g.ticks++
	if g.missFlash > 0 {
		g.missFlash--
	}

	if len(g.words) == 0 {
		g.spawnWave()
	}

	step := g.difficulty.Step(g.cfg.World.Step, g.wave, g.ticks)
	kept := g.words[:0]
	for _, w := range g.words {
		w.X -= float64(w.Speed) * step
		if w.X < g.cfg.World.ExitX {
			g.lives--
			g.combo = 0
			g.emit(Event{Kind: EventLifeLost, Word: w.Text, Value: g.lives})
			continue
		}
		if w.ShownTick < 0 && w.Visible(g.runtime.ScreenW) {
			w.ShownTick = g.ticks
		}
		kept = append(kept, w)
	}
	g.words = kept

	g.resolvePending()
}

func (g *Game) spawnWave() {
	wave := GenerateLevel(g.rng, g.level, g.filter, g.catalog, g.field)
	for i := range wave {
		wave[i].SpawnTick = g.ticks
	}
	g.words = wave
	g.wave++
	g.emit(Event{Kind: EventWave, Value: g.level})
	g.level++
}

func (g *Game) resolvePending() {
	for _, sub := range g.pending {
		r := Resolve(sub.text, g.words)
		switch r.Outcome {
		case OutcomeMatch:
			g.words = append(g.words[:r.Index], g.words[r.Index+1:]...)
			g.score += r.Points
			g.best = max(g.best, g.score)
			g.combo++
			g.maxCombo = max(g.maxCombo, g.combo)
			g.recorder.Record(r.Word.Text, g.onScreenFor(r.Word), sub.keystrokes)
			g.emit(Event{Kind: EventMatch, Word: r.Word.Text, Points: r.Points})
		case OutcomeMiss:
			g.combo = 0
			g.missFlash = g.cfg.Gameplay.MissFlashTicks
			g.emit(Event{Kind: EventMiss, Word: sub.text})
		}
	}
	g.pending = g.pending[:0]
}

// onScreenFor returns how long w has been visible, at least one tick.
func (g *Game) onScreenFor(w Word) time.Duration {
	from := w.ShownTick
	if from < 0 {
		from = w.SpawnTick
	}
	return g.ticksToDuration(max(g.ticks-from, 1))
}

func (g *Game) ticksToDuration(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(g.runtime.TickRate)
}

// Abandon returns the report of the session in progress when the player
// leaves before a game over. It returns nil outside a session and on every
// later call for the same session.
func (g *Game) Abandon() *stats.Report {
	if g.closed || !g.inSession() {
		return nil
	}
	g.closed = true
	report := g.finish()
	return &report
}

// inSession reports whether a session is under way.
func (g *Game) inSession() bool {
	return g.state == StatePlaying || g.state == StatePaused
}

func (g *Game) finish() stats.Report {
	return g.recorder.Finish(g.score, g.ticksToDuration(g.ticks), g.maxCombo, g.wave)
}

// Quit stores the best score of this process if it beats the stored high score.
func (g *Game) Quit() (bool, error) {
	if g.highScores == nil {
		return false, nil
	}
	best := max(g.best, g.score)
	saved, err := g.highScores.SaveIfHigher(best)
	if saved {
		g.highScore = best
	}
	return saved, err
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives. It reaches -1 on the tick the game ends.
func (g *Game) Lives() int {
	return g.lives
}

// Level returns the size of the next wave.
func (g *Game) Level() int {
	return g.level
}

// Wave returns the number of waves spawned this session.
func (g *Game) Wave() int {
	return g.wave
}

// Words returns a copy of the active words.
func (g *Game) Words() []Word {
	out := make([]Word, len(g.words))
	copy(out, g.words)
	return out
}

// Buffer returns the player's current input.
func (g *Game) Buffer() string {
	return g.matcher.Buffer()
}

// Filter returns the active length filter.
func (g *Game) Filter() words.LengthFilter {
	return g.filter
}

// Best returns the best score reached in this process.
func (g *Game) Best() int {
	return g.best
}

// HighScore returns the stored high score.
func (g *Game) HighScore() int {
	return max(g.highScore, g.best)
}

// Layout returns the clickable regions for the current screen.
func (g *Game) Layout() Layout {
	return g.layout
}
