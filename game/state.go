package game

import (
	"fmt"
	"strings"
)

type GameState int

const (
	GameStateIdle GameState = iota
	GameStateCountdown
	GameStatePlaying
	GameStateRoundOver
)

func (s GameState) String() string {
	switch s {
	case GameStateIdle:
		return "Idle"
	case GameStateCountdown:
		return "Countdown"
	case GameStatePlaying:
		return "Playing"
	case GameStateRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// Difficulty controls how often the target relocates on its own.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
}
