package game

import (
	"testing"
	"time"

	"github.com/meghashyamc/clickcircle/config"
	"github.com/meghashyamc/clickcircle/logger"
)

func loadEnvConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestNewSettingsDefaults(t *testing.T) {
	cfg := loadEnvConfig(t, nil)

	got := NewSettings(cfg, logger.NewNop())
	if got != DefaultSettings() {
		t.Errorf("NewSettings() = %+v, want defaults %+v", got, DefaultSettings())
	}
	if area := got.SpawnArea(); area.X != 20 || area.Y != 20 || area.Width != 560 || area.Height != 460 {
		t.Errorf("SpawnArea() = %+v", area)
	}
}

func TestNewSettingsOverrides(t *testing.T) {
	cfg := loadEnvConfig(t, map[string]string{
		"ROUND_DURATION_SECONDS": "10",
		"COUNTDOWN_SECONDS":      "5",
		"DIFFICULTY":             "Medium",
		"MEDIUM_RELOCATE_MS":     "1000",
		"HARD_RELOCATE_MS":       "400",
	})

	got := NewSettings(cfg, logger.NewNop())
	if got.RoundDuration != 10 || got.CountdownDuration != 5 {
		t.Errorf("durations = %d, %d", got.RoundDuration, got.CountdownDuration)
	}
	if got.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty = %v, want Medium", got.Difficulty)
	}
	if got.MediumInterval != time.Second || got.HardInterval != 400*time.Millisecond {
		t.Errorf("intervals = %v, %v", got.MediumInterval, got.HardInterval)
	}
}

func TestNewSettingsRejectsBadValues(t *testing.T) {
	cfg := loadEnvConfig(t, map[string]string{
		"DIFFICULTY":    "nightmare",
		"WINDOW_WIDTH":  "100",
		"WINDOW_HEIGHT": "60",
		"TARGET_RADIUS": "50",
	})

	got := NewSettings(cfg, logger.NewNop())
	if got.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %v, want Easy", got.Difficulty)
	}
	if got.TargetRadius != 30 {
		t.Errorf("TargetRadius = %d, want clamped to 30", got.TargetRadius)
	}
}

func TestSettingsRelocationInterval(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		d    Difficulty
		want time.Duration
		ok   bool
	}{
		{DifficultyEasy, 0, false},
		{DifficultyMedium, 1500 * time.Millisecond, true},
		{DifficultyHard, 750 * time.Millisecond, true},
	}
	for _, tt := range tests {
		got, ok := s.RelocationInterval(tt.d)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RelocationInterval(%v) = %v, %v; want %v, %v", tt.d, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDifficultyAndStrings(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty accepted an unknown name")
	}
	if Difficulty(9).String() != "Unknown" || GameState(9).String() != "Unknown" {
		t.Error("out-of-range values should stringify as Unknown")
	}
	if GameStateRoundOver.String() != "RoundOver" {
		t.Errorf("GameStateRoundOver.String() = %q", GameStateRoundOver.String())
	}
}
