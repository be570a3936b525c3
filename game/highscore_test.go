package game

import "testing"

func TestHighScoreTrackerSubmit(t *testing.T) {
	tests := []struct {
		name      string
		previous  int
		score     int
		wantBest  int
		wantNewHS bool
	}{
		{"higher score replaces", 5, 7, 7, true},
		{"lower score keeps", 5, 3, 5, false},
		{"equal score keeps", 5, 5, 5, false},
		{"zero on fresh tracker", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHighScoreTracker()
			h.Submit(tt.previous)

			if got := h.Submit(tt.score); got != tt.wantNewHS {
				t.Errorf("Submit(%d) = %v, want %v", tt.score, got, tt.wantNewHS)
			}
			if h.Best() != tt.wantBest {
				t.Errorf("Best() = %d, want %d", h.Best(), tt.wantBest)
			}
		})
	}
}

func TestHighScoreTrackerText(t *testing.T) {
	h := NewHighScoreTracker()
	if h.Text() != "HS: 0" {
		t.Errorf("Text() = %q, want %q", h.Text(), "HS: 0")
	}
	h.Submit(12)
	if h.Text() != "HS: 12" {
		t.Errorf("Text() = %q, want %q", h.Text(), "HS: 12")
	}
}
