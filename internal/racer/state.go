package racer

// State is the phase of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger requests a state change.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerPause
	TriggerResume
	TriggerLivesExhausted
	TriggerReset
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerLivesExhausted:
		return "lives_exhausted"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

type transition struct {
	from    State
	trigger Trigger
}

var transitions = map[transition]State{
	{StateMenu, TriggerStart}:             StatePlaying,
	{StatePlaying, TriggerPause}:          StatePaused,
	{StatePaused, TriggerResume}:          StatePlaying,
	{StatePlaying, TriggerLivesExhausted}: StateGameOver,
	{StateGameOver, TriggerReset}:         StateMenu,
}

// Next returns the state reached from s by t. Triggers that are not valid
// in s leave it unchanged and return false.
func Next(s State, t Trigger) (State, bool) {
	to, ok := transitions[transition{s, t}]
	if !ok {
		return s, false
	}
	return to, true
}
