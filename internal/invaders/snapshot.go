package invaders

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Snapshot is a flat copy of everything a frontend needs to draw one frame.
// The window frontend draws from it; tests hash it to check determinism.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	FieldW float64
	FieldH float64

	Score    int
	MaxScore int
	HiScore  int
	Level    int
	Lives    int

	FleetDirection int

	Ship    core.Rect
	Bullets []core.Rect
	Aliens  []core.Rect
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]core.Rect, 0, g.ship.Arsenal().Len())
	for _, b := range g.ship.Arsenal().Bullets() {
		bullets = append(bullets, b.Bounds())
	}

	aliens := make([]core.Rect, 0, g.fleet.Len())
	for _, a := range g.fleet.Aliens() {
		aliens = append(aliens, a.Bounds())
	}

	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		FieldW: g.fieldW,
		FieldH: g.fieldH,

		Score:    g.stats.Score,
		MaxScore: g.stats.MaxScore,
		HiScore:  g.stats.HiScore,
		Level:    g.stats.Level,
		Lives:    g.stats.Lives,

		FleetDirection: g.fleet.Direction(),

		Ship:    g.ship.Bounds(),
		Bullets: bullets,
		Aliens:  aliens,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxScore)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HiScore)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDirection) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Ship)

	h = h*31 + uint64(len(snap.Bullets))
	for _, r := range snap.Bullets {
		h = hashRect(h, r)
	}

	h = h*31 + uint64(len(snap.Aliens))
	for _, r := range snap.Aliens {
		h = hashRect(h, r)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	return h*31 + math.Float64bits(r.H)
}
