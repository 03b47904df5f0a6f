package racer

import "testing"

func TestWordPoints(t *testing.T) {
	tests := []struct {
		text  string
		speed int
		want  int
	}{
		{"cat", 2, 60},
		{"dog", 3, 90},
		{"at", 1, 20},
		{"elephant", 3, 240},
	}

	for _, tt := range tests {
		w := Word{Text: tt.text, Speed: tt.speed}
		if got := w.Points(); got != tt.want {
			t.Errorf("Points(%q, speed %d) = %d, want %d", tt.text, tt.speed, got, tt.want)
		}
	}
}

func TestWordVisible(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"off right edge", 80, false},
		{"entering", 79.5, true},
		{"middle", 40, true},
		{"leaving", -2.5, true},
		{"gone left", -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Word{Text: "cat", X: tt.x}
			if got := w.Visible(80); got != tt.want {
				t.Errorf("Visible() at x=%v = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}
