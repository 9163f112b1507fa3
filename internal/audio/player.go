// Package audio synthesizes the game's sound effects with beep.
// Nothing is loaded from disk: every effect is generated on demand.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

// Player plays sound effects without blocking the game loop.
type Player interface {
	Play(s Sound)
	Close()
}

// Nop is a Player that discards everything.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Close()     {}

// speakerInit is replaced in tests.
var speakerInit = speaker.Init

// Speaker mixes effects into the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// New returns a Player for cfg. When audio is disabled or the device cannot
// be opened it returns Nop; the failure is logged, not fatal.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}

	if err := speakerInit(rate, rate.N(50*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
	}
	speaker.Play(s.mixer)
	logger.Debug("audio ready", "rate", int(rate), "volume", cfg.Volume)
	return s
}

// Play queues a sound on the mixer and returns immediately.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st := Stream(snd, s.rate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
