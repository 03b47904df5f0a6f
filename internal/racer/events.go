package racer

import "github.com/vovakirdan/typeracer/internal/stats"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStart    EventKind = iota // Session started from the menu
	EventPause                     // Play paused
	EventResume                    // Play resumed
	EventWave                      // A new wave spawned
	EventMatch                     // A word was typed correctly
	EventMiss                      // A submission matched nothing
	EventLifeLost                  // A word left the screen
	EventGameOver                  // Lives exhausted
	EventFilter                    // A length bucket was toggled
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventWave:
		return "wave"
	case EventMatch:
		return "match"
	case EventMiss:
		return "miss"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported back to the platform, which uses
// them for logging and visual cues.
type Event struct {
	Kind   EventKind
	Word   string // Match, miss and life-lost events
	Points int    // Match events
	Value  int    // Wave size, remaining lives or toggled bucket
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  State
	Events []Event
	Report *stats.Report // Set when a session ends
	Quit   bool          // The player asked to leave
}
