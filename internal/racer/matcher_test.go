package racer

import "testing"

func TestMatcherAppend(t *testing.T) {
	var m Matcher
	for _, r := range "Ab1 c-D" {
		m.Append(r)
	}
	if got := m.Buffer(); got != "abcd" {
		t.Errorf("Buffer() = %q, want %q", got, "abcd")
	}
	if m.Keystrokes() != 4 {
		t.Errorf("Keystrokes() = %d, want 4", m.Keystrokes())
	}
}

func TestMatcherBackspaceAndCommit(t *testing.T) {
	var m Matcher
	if m.Backspace() {
		t.Error("Backspace on empty buffer should report false")
	}

	m.Append('d')
	m.Append('o')
	m.Append('x')
	m.Backspace()
	m.Append('g')

	if got := m.Commit(); got != "dog" {
		t.Errorf("Commit() = %q, want %q", got, "dog")
	}
	if m.Buffer() != "" || m.Keystrokes() != 0 {
		t.Errorf("after commit: buffer=%q keystrokes=%d", m.Buffer(), m.Keystrokes())
	}
}

func TestResolve(t *testing.T) {
	active := []Word{
		{Text: "cat", Speed: 2},
		{Text: "dog", Speed: 3},
		{Text: "cat", Speed: 1},
	}

	tests := []struct {
		name       string
		submission string
		outcome    Outcome
		index      int
		points     int
	}{
		{"empty", "", OutcomeNone, -1, 0},
		{"miss", "cow", OutcomeMiss, -1, 0},
		{"prefix is a miss", "ca", OutcomeMiss, -1, 0},
		{"match", "dog", OutcomeMatch, 1, 90},
		{"first duplicate wins", "cat", OutcomeMatch, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.submission, active)
			if r.Outcome != tt.outcome || r.Index != tt.index || r.Points != tt.points {
				t.Errorf("Resolve(%q) = %+v, want outcome=%v index=%d points=%d",
					tt.submission, r, tt.outcome, tt.index, tt.points)
			}
		})
	}
}
