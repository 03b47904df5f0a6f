// Package stats records per-word typing trials during a session and writes
// the end-of-session report.
package stats

import "time"

// Trial is one correctly typed word.
type Trial struct {
	WordNo   int
	Word     string
	Time     float64 // Seconds the word was on screen before it was typed
	WPM      float64
	Accuracy float64 // Percent of keystrokes that ended up in the word
}

// Report is the summary of a finished session.
type Report struct {
	Trials     []Trial
	TotalScore int
	Duration   float64 // Seconds of active play, pauses excluded
	MaxCombo   int
	Level      int // Last wave reached
}

// Recorder accumulates trials for the current session.
type Recorder struct {
	trials []Trial
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a trial for word, typed elapsed after it appeared using the
// given number of keystrokes, and returns it.
func (r *Recorder) Record(word string, elapsed time.Duration, keystrokes int) Trial {
	t := Trial{
		WordNo:   len(r.trials) + 1,
		Word:     word,
		Time:     elapsed.Seconds(),
		WPM:      WPM(len(word), elapsed),
		Accuracy: Accuracy(len(word), keystrokes),
	}
	r.trials = append(r.trials, t)
	return t
}

// Trials returns a copy of the recorded trials.
func (r *Recorder) Trials() []Trial {
	out := make([]Trial, len(r.trials))
	copy(out, r.trials)
	return out
}

// Len returns the number of recorded trials.
func (r *Recorder) Len() int {
	return len(r.trials)
}

// Finish builds the session report from the recorded trials.
func (r *Recorder) Finish(totalScore int, duration time.Duration, maxCombo, level int) Report {
	return Report{
		Trials:     r.Trials(),
		TotalScore: totalScore,
		Duration:   duration.Seconds(),
		MaxCombo:   maxCombo,
		Level:      level,
	}
}

// Reset discards all trials.
func (r *Recorder) Reset() {
	r.trials = r.trials[:0]
}

// WPM converts a number of typed characters over a duration to words per
// minute, counting five characters as one word.
func WPM(chars int, elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return (float64(chars) / 5.0) / minutes
}

// Accuracy returns the share of keystrokes that were needed for a word of
// the given length, as a percentage capped at 100.
func Accuracy(length, keystrokes int) float64 {
	if keystrokes <= 0 || keystrokes <= length {
		return 100
	}
	return float64(length) / float64(keystrokes) * 100
}
