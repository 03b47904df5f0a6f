package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/racer"
)

// KeyMap defines the key bindings shown in the help line.
// Letters are not bound: every printable rune goes to the input buffer.
type KeyMap struct {
	Start      key.Binding
	Submit     key.Binding
	Backspace  key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Lengths    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "submit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "resume"),
		),
		Lengths: key.NewBinding(
			key.WithKeys("2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("2-8", "word lengths"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// stateHelp adapts the key map to help.KeyMap for one game state.
type stateHelp struct {
	keys  KeyMap
	state racer.State
}

// ShortHelp returns the bindings relevant in the current state.
func (h stateHelp) ShortHelp() []key.Binding {
	switch h.state {
	case racer.StatePlaying:
		return []key.Binding{h.keys.Submit, h.keys.Backspace, h.keys.Pause, h.keys.ForceQuit}
	case racer.StatePaused:
		return []key.Binding{h.keys.Resume, h.keys.Lengths, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Start, h.keys.Quit}
	}
}

// FullHelp returns all bindings grouped by purpose.
func (h stateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Start, h.keys.Submit, h.keys.Backspace},
		{h.keys.Pause, h.keys.Lengths},
		{h.keys.Quit, h.keys.ForceQuit, h.keys.Screenshot},
	}
}

// KeyMapper translates Bubble Tea messages to game input events.
// Events are appended in arrival order; the game decides what they mean
// in its current state.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame appends the events for a key message to the frame.
// Returns true if the key was ctrl+c.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, km.keys.Submit):
		frame.Set(core.ActionCommit)
		return false
	case key.Matches(msg, km.keys.Backspace):
		frame.Set(core.ActionBackspace)
		return false
	case key.Matches(msg, km.keys.Pause):
		frame.Set(core.ActionPause)
		return false
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.Push(core.InputEvent{Action: core.ActionRune, Rune: r})
		}
	}
	return false
}

// MapMouseToFrame appends a click for a left button release.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionRelease {
		return
	}
	// X10 terminals do not report which button was released
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return
	}
	frame.Click(msg.X, msg.Y)
}
