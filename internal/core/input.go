package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionRune             // Printable character typed (payload in InputEvent.Rune)
	ActionBackspace        // Backspace - remove last typed character
	ActionCommit           // Enter, Space - submit the typed buffer / start from menu
	ActionPause            // Esc - toggle pause
	ActionClick            // Mouse button release (payload in InputEvent.X/Y)
	ActionQuit             // Ctrl+C - exit unconditionally
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRune:
		return "Rune"
	case ActionBackspace:
		return "Backspace"
	case ActionCommit:
		return "Commit"
	case ActionPause:
		return "Pause"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a single input occurrence captured during one tick.
type InputEvent struct {
	Action Action
	Rune   rune // Set for ActionRune
	X, Y   int  // Cell coordinates, set for ActionClick
}

// InputFrame holds every input event captured since the previous tick.
// Events keep their arrival order: typing "ab", Enter, "c" within one tick
// must be replayed in exactly that order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 8)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Set appends a payload-free action to the frame.
func (f *InputFrame) Set(a Action) {
	f.Push(InputEvent{Action: a})
}

// Type appends one ActionRune event per rune of s.
func (f *InputFrame) Type(s string) {
	for _, r := range s {
		f.Push(InputEvent{Action: ActionRune, Rune: r})
	}
}

// Click appends a click at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Push(InputEvent{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action occurs anywhere in the frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether no events were captured.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]InputEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
