// Package sfx plays the short UI sounds. Audio is optional: when the
// output device cannot be opened the player stays silent.
package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 880.0
	clickDuration = 60 * time.Millisecond
	clickVolume   = 0.25
)

// Player plays UI sounds.
type Player interface {
	Click()
}

// Silent discards every sound.
type Silent struct{}

// Click does nothing.
func (Silent) Click() {}

// Speaker plays sounds through the default output device.
type Speaker struct {
	mixer *beep.Mixer
}

// Open initialises the output device. When mute is set, or the device is
// unavailable, it returns a Silent player and logs why.
func Open(mute bool, logger *log.Logger) Player {
	if mute {
		return Silent{}
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing muted", "error", err)
		return Silent{}
	}
	speaker.Play(s.mixer)
	return s
}

// Click plays the button press tone.
func (s *Speaker) Click() {
	st, err := ClickStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// ClickStreamer builds the press tone: a short sine blip with an
// exponential fade.
func ClickStreamer(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, clickFreq)
	if err != nil {
		return nil, fmt.Errorf("click tone: %w", err)
	}
	n := rate.N(clickDuration)
	return &fade{src: beep.Take(n, tone), total: n, volume: clickVolume}, nil
}

// fade scales samples by volume*exp(-5t), t running 0..1 over total.
type fade struct {
	src    beep.Streamer
	total  int
	pos    int
	volume float64
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.volume * math.Exp(-5*float64(f.pos)/float64(f.total))
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.src.Err() }
