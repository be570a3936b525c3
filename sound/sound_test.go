package sound

import (
	"testing"

	"github.com/meghashyamc/clickcircle/logger"
)

func TestToneStreamerLength(t *testing.T) {
	for _, tn := range []tone{hitTone, roundOverTone, recordTone} {
		streamer, err := toneStreamer(tn)
		if err != nil {
			t.Fatalf("toneStreamer(%v): %v", tn.freq, err)
		}

		want := sampleRate.N(tn.duration)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := streamer.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total != want {
			t.Errorf("tone %vHz streamed %d samples, want %d", tn.freq, total, want)
		}
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(false, logger.NewNop())
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if p.Enabled() {
		t.Fatal("disabled player reports enabled")
	}
	// None of these may touch the speaker.
	p.PlayHit()
	p.PlayRoundOver(true)
	p.PlayRoundOver(false)
	p.Close()
}
