package game

import "fmt"

// HighScoreTracker keeps the best score seen during this process run.
type HighScoreTracker struct {
	best int
}

func NewHighScoreTracker() *HighScoreTracker {
	return &HighScoreTracker{}
}

func (h *HighScoreTracker) IsNewHighScore(score int) bool {
	return score > h.best
}

// Submit records score if it beats the current best and reports whether it did.
func (h *HighScoreTracker) Submit(score int) bool {
	if !h.IsNewHighScore(score) {
		return false
	}
	h.best = score
	return true
}

func (h *HighScoreTracker) Best() int {
	return h.best
}

func (h *HighScoreTracker) Text() string {
	return fmt.Sprintf("HS: %d", h.best)
}
