package racer

// Outcome is the result of resolving one submission.
type Outcome int

const (
	OutcomeNone  Outcome = iota // Empty submission, ignored
	OutcomeMatch                // Submission equals an active word
	OutcomeMiss                 // Submission matches nothing on screen
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMatch:
		return "match"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Resolution describes what a submission did.
type Resolution struct {
	Outcome Outcome
	Index   int // Index of the matched word in the active slice, -1 otherwise
	Word    Word
	Points  int
}

// Resolve matches a submission against the active words. The first word in
// slice order with exactly the same text wins.
func Resolve(submission string, active []Word) Resolution {
	if submission == "" {
		return Resolution{Outcome: OutcomeNone, Index: -1}
	}
	for i, w := range active {
		if w.Text == submission {
			return Resolution{Outcome: OutcomeMatch, Index: i, Word: w, Points: w.Points()}
		}
	}
	return Resolution{Outcome: OutcomeMiss, Index: -1}
}

// Matcher holds the player's input buffer.
type Matcher struct {
	buf        []rune
	keystrokes int
}

// Append adds a letter to the buffer, lowercased. Anything that is not an
// ASCII letter is ignored and false is returned.
func (m *Matcher) Append(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
		r += 'a' - 'A'
	default:
		return false
	}
	m.buf = append(m.buf, r)
	m.keystrokes++
	return true
}

// Backspace removes the last letter, if any.
func (m *Matcher) Backspace() bool {
	if len(m.buf) == 0 {
		return false
	}
	m.buf = m.buf[:len(m.buf)-1]
	return true
}

// Buffer returns the current input.
func (m *Matcher) Buffer() string {
	return string(m.buf)
}

// Keystrokes returns the letters typed since the last commit, deleted ones included.
func (m *Matcher) Keystrokes() int {
	return m.keystrokes
}

// Commit returns the buffer and clears it along with the keystroke count.
func (m *Matcher) Commit() string {
	s := string(m.buf)
	m.Reset()
	return s
}

// Reset clears the buffer.
func (m *Matcher) Reset() {
	m.buf = m.buf[:0]
	m.keystrokes = 0
}
