package racer

// Snapshot is a copy of the session state, comparable across runs.
type Snapshot struct {
	State    string
	Tick     int
	Score    int
	Lives    int
	Level    int
	Wave     int
	Combo    int
	MaxCombo int
	Buffer   string
	Filter   string
	Words    []Word
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state.String(),
		Tick:     g.ticks,
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Wave:     g.wave,
		Combo:    g.combo,
		MaxCombo: g.maxCombo,
		Buffer:   g.matcher.Buffer(),
		Filter:   g.filter.String(),
		Words:    g.Words(),
	}
}
