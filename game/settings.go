package game

import (
	"time"

	"github.com/meghashyamc/clickcircle/config"
	"github.com/meghashyamc/clickcircle/geometry"
	"github.com/meghashyamc/clickcircle/logger"
)

const (
	defaultWidth             = 600
	defaultHeight            = 500
	defaultRoundDuration     = 30
	defaultCountdownDuration = 3
	defaultTargetRadius      = 20
	defaultMediumInterval    = 1500 * time.Millisecond
	defaultHardInterval      = 750 * time.Millisecond
)

// Settings are the tunables of a round. Widths, heights and the radius are in
// logical canvas units.
type Settings struct {
	Width             int
	Height            int
	TargetRadius      int
	RoundDuration     int // seconds
	CountdownDuration int // seconds
	Difficulty        Difficulty
	MediumInterval    time.Duration
	HardInterval      time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Width:             defaultWidth,
		Height:            defaultHeight,
		TargetRadius:      defaultTargetRadius,
		RoundDuration:     defaultRoundDuration,
		CountdownDuration: defaultCountdownDuration,
		Difficulty:        DifficultyEasy,
		MediumInterval:    defaultMediumInterval,
		HardInterval:      defaultHardInterval,
	}
}

// NewSettings reads settings from cfg, keeping defaults for anything unset.
func NewSettings(cfg *config.Config, log logger.Logger) Settings {
	s := DefaultSettings()

	if v := cfg.GetWindowWidth(); v > 0 {
		s.Width = v
	}
	if v := cfg.GetWindowHeight(); v > 0 {
		s.Height = v
	}
	if v := cfg.GetTargetRadius(); v > 0 {
		s.TargetRadius = v
	}
	if v := cfg.GetRoundDuration(); v > 0 {
		s.RoundDuration = v
	}
	if v := cfg.GetCountdownDuration(); v > 0 {
		s.CountdownDuration = v
	}
	if v := cfg.GetMediumRelocateInterval(); v > 0 {
		s.MediumInterval = time.Duration(v) * time.Millisecond
	}
	if v := cfg.GetHardRelocateInterval(); v > 0 {
		s.HardInterval = time.Duration(v) * time.Millisecond
	}
	if name := cfg.GetDifficulty(); len(name) > 0 {
		d, err := ParseDifficulty(name)
		if err != nil {
			log.Warn("ignoring configured difficulty", "err", err)
		} else {
			s.Difficulty = d
		}
	}

	// The target has to fit inside the canvas.
	if maxRadius := min(s.Width, s.Height) / 2; s.TargetRadius > maxRadius {
		log.Warn("target radius too large for canvas, clamping", "radius", s.TargetRadius, "max", maxRadius)
		s.TargetRadius = maxRadius
	}

	return s
}

// RelocationInterval returns the automatic relocation delay for d. Easy never
// relocates on its own.
func (s Settings) RelocationInterval(d Difficulty) (time.Duration, bool) {
	switch d {
	case DifficultyMedium:
		return s.MediumInterval, true
	case DifficultyHard:
		return s.HardInterval, true
	default:
		return 0, false
	}
}

// Canvas is the full play area.
func (s Settings) Canvas() geometry.Rect {
	return geometry.NewRect(0, 0, float64(s.Width), float64(s.Height))
}

// SpawnArea is where a target centre may be placed so the whole target stays
// on the canvas.
func (s Settings) SpawnArea() geometry.Rect {
	return s.Canvas().Inset(float64(s.TargetRadius))
}
