package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Sound identifies a synthesized effect.
type Sound int

const (
	SoundLaser   Sound = iota // Ship fired
	SoundImpact               // Alien destroyed
	SoundShipHit              // Life lost
	SoundLevelUp              // Fleet cleared
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundImpact:
		return "impact"
	case SoundShipHit:
		return "ship_hit"
	case SoundLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// Effect durations
const (
	laserDuration   = 120 * time.Millisecond
	impactDuration  = 180 * time.Millisecond
	shipHitDuration = 450 * time.Millisecond
	levelUpNote     = 90 * time.Millisecond
	shortAttack     = 5 * time.Millisecond
)

// Stream builds a fresh streamer for the sound at the given linear gain.
func Stream(s Sound, rate beep.SampleRate, gain float64) beep.Streamer {
	switch s {
	case SoundLaser:
		// Descending square sweep
		osc := NewSweep(1400, 300, laserDuration, WaveSquare, rate)
		return withVolume(NewEnvelope(osc, laserDuration, shortAttack, 80*time.Millisecond, rate), gain*0.35)

	case SoundImpact:
		// Noise burst over a low thump
		noise := NewEnvelope(NewSweep(0, 0, impactDuration, WaveNoise, rate),
			impactDuration, shortAttack, 150*time.Millisecond, rate)
		thump := NewEnvelope(NewSweep(160, 60, impactDuration, WaveSine, rate),
			impactDuration, shortAttack, 150*time.Millisecond, rate)
		return withVolume(beep.Mix(withVolume(noise, 0.6), withVolume(thump, 0.4)), gain*0.5)

	case SoundShipHit:
		osc := NewSweep(400, 40, shipHitDuration, WaveSquare, rate)
		noise := NewSweep(0, 0, shipHitDuration, WaveNoise, rate)
		mixed := beep.Mix(withVolume(osc, 0.5), withVolume(noise, 0.5))
		return withVolume(NewEnvelope(mixed, shipHitDuration, shortAttack, 300*time.Millisecond, rate), gain*0.5)

	case SoundLevelUp:
		// Rising three-note arpeggio
		notes := make([]beep.Streamer, 0, 3)
		for _, f := range []float64{523.25, 659.25, 783.99} {
			osc := NewSweep(f, f, levelUpNote, WaveSquare, rate)
			notes = append(notes, NewEnvelope(osc, levelUpNote, shortAttack, 40*time.Millisecond, rate))
		}
		return withVolume(beep.Seq(notes...), gain*0.3)
	}
	return nil
}

// ForEvent maps a game event to its sound. ok is false for silent events.
func ForEvent(e core.Event) (s Sound, ok bool) {
	switch e {
	case core.EventFired:
		return SoundLaser, true
	case core.EventImpact:
		return SoundImpact, true
	case core.EventLifeLost:
		return SoundShipHit, true
	case core.EventLevelCleared:
		return SoundLevelUp, true
	default:
		return 0, false
	}
}

// PlayEvents plays the sound of every audible event of one frame.
func PlayEvents(p Player, events []core.Event) {
	for _, e := range events {
		if s, ok := ForEvent(e); ok {
			p.Play(s)
		}
	}
}
