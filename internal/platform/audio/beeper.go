// Package audio provides the pickup cue: a short sine tone through the
// system speaker, or the terminal bell when no audio device is available.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880
	toneLength = 50 * time.Millisecond
	bell       = "\a"
)

// Beeper plays the alert cue. It is safe for concurrent use and never
// blocks the caller on audio output.
type Beeper struct {
	mu     sync.Mutex
	speak  bool
	out    io.Writer // bell fallback
	logger *log.Logger
	play   func(beep.Streamer)
}

// NewBeeper initializes the speaker. If that fails the cue falls back to
// writing the terminal bell to out.
func NewBeeper(out io.Writer, logger *log.Logger) *Beeper {
	return newBeeper(out, logger, func() error {
		return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	}, func(s beep.Streamer) { speaker.Play(s) })
}

func newBeeper(out io.Writer, logger *log.Logger, initFn func() error, play func(beep.Streamer)) *Beeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Beeper{out: out, logger: logger, play: play}
	if err := initFn(); err != nil {
		// Non-fatal, the game runs with the bell instead
		logger.Warn("audio initialization failed, using terminal bell", "error", err)
		return b
	}
	b.speak = true
	return b
}

// Alert plays one cue.
func (b *Beeper) Alert() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.speak {
		if b.out != nil {
			fmt.Fprint(b.out, bell)
		}
		return
	}

	tone, err := Tone(toneFreq, toneLength)
	if err != nil {
		b.logger.Debug("tone generation failed", "error", err)
		return
	}
	b.play(tone)
}

// Speaker reports whether the cue goes to the audio device.
func (b *Beeper) Speaker() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.speak
}

// Tone returns a sine tone of the given frequency and length at half
// volume.
func Tone(freq int, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, fmt.Errorf("audio: tone %dHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Base:     2,
		Volume:   -1,
	}, nil
}

// Mute discards alerts.
type Mute struct{}

// Alert does nothing.
func (Mute) Alert() {}
