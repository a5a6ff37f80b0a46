// Package audio turns a computed sound level into something audible: a
// steady sine tone whose gain follows the ripple-propagated sound map value
// at the listener's cell.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a continuously playing tone with adjustable loudness.
type Tone struct {
	volume *effects.Volume
}

// NewTone starts the speaker and plays a silent tone at freq Hz. Callers on
// machines without audio output get an error and should carry on muted.
func NewTone(freq int) (*Tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	osc, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, fmt.Errorf("create oscillator: %w", err)
	}
	vol := &effects.Volume{
		Streamer: osc,
		Base:     2,
		Volume:   0,
		Silent:   true,
	}
	speaker.Play(vol)
	return &Tone{volume: vol}, nil
}

// SetLevel maps a sound map value in [0, 1] onto the tone's gain: zero is
// silence, one is full volume, and the curve between is exponential so mid
// levels sound naturally quieter.
func (t *Tone) SetLevel(level float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if level <= 0 {
		t.volume.Silent = true
		return
	}
	if level > 1 {
		level = 1
	}
	t.volume.Silent = false
	// level 1 → 0 dB-ish, level→0 fades toward −8 octaves of Base 2.
	t.volume.Volume = (level - 1) * 8
}

// Close silences the speaker.
func (t *Tone) Close() {
	speaker.Clear()
	speaker.Close()
}
