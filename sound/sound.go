// Package sound plays short synthesized cues for hits and round ends.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/meghashyamc/clickcircle/logger"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var (
	hitTone       = tone{freq: 880, duration: 50 * time.Millisecond}
	roundOverTone = tone{freq: 440, duration: 300 * time.Millisecond}
	recordTone    = tone{freq: 1320, duration: 300 * time.Millisecond}
)

type Player struct {
	enabled bool
	logger  logger.Logger
}

func NewPlayer(enabled bool, log logger.Logger) *Player {
	return &Player{enabled: enabled, logger: log}
}

// Init opens the audio device. On failure the player stays silent and the
// error is returned for logging; the game runs fine without sound.
func (p *Player) Init() error {
	if !p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.enabled = false
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return nil
}

func (p *Player) Enabled() bool {
	return p.enabled
}

func (p *Player) PlayHit() {
	p.play(hitTone)
}

func (p *Player) PlayRoundOver(newRecord bool) {
	if newRecord {
		p.play(recordTone)
		return
	}
	p.play(roundOverTone)
}

func (p *Player) play(t tone) {
	if !p.enabled {
		return
	}
	streamer, err := toneStreamer(t)
	if err != nil {
		p.logger.Warn("failed to build tone", "freq", t.freq, "err", err)
		return
	}
	speaker.Play(streamer)
}

func toneStreamer(t tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.duration), sine), nil
}

// Close stops anything still playing.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
