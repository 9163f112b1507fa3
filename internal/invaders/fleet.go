package invaders

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Sampler is the random source used for spawning. *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// Formation is the grid the fleet spawns into.
type Formation struct {
	Cols, Rows       int
	OffsetX, OffsetY float64
	CellW, CellH     float64
}

// ComputeFormation sizes the grid so the fleet fills roughly the upper half
// of the screen. On each axis an even fit count is decremented by one and an
// odd one incremented by two; the result is never smaller than 1x1.
// Offsets center the grid horizontally and inside the top half vertically.
func ComputeFormation(alienW, alienH float64, screenW, screenH int) Formation {
	half := float64(screenH / 2)

	cols := adjustCount(int(math.Floor(float64(screenW) / alienW)))
	rows := adjustCount(int(math.Floor(float64(screenH) / 2 / alienH)))

	return Formation{
		Cols:    cols,
		Rows:    rows,
		OffsetX: math.Floor((float64(screenW) - float64(cols)*alienW) / 2),
		OffsetY: math.Floor((half - float64(rows)*alienH) / 2),
		CellW:   alienW,
		CellH:   alienH,
	}
}

// adjustCount applies the even/odd policy and the 1x1 minimum.
func adjustCount(n int) int {
	if n%2 == 0 {
		n--
	} else {
		n += 2
	}
	return core.Max(n, 1)
}

// Cell returns the top-left position of the alien at (row, col).
func (f Formation) Cell(row, col int) (float64, float64) {
	return f.OffsetX + float64(col)*f.CellW, f.OffsetY + float64(row)*f.CellH
}

// Bounds returns the rectangle covered by the whole grid.
func (f Formation) Bounds() core.Rect {
	return core.NewRect(f.OffsetX, f.OffsetY, float64(f.Cols)*f.CellW, float64(f.Rows)*f.CellH)
}

// Fleet is the set of live aliens plus their shared motion.
type Fleet struct {
	aliens      []*Alien
	motion      *motion
	drop        float64
	spawnChance float64
	formation   Formation
	sampler     Sampler
}

// FleetOptions configures a new fleet.
type FleetOptions struct {
	AlienW, AlienH float64
	FieldW, FieldH int
	Speed          float64
	Drop           float64
	Direction      int
	SpawnChance    float64
}

// NewFleet creates an empty fleet. Call Spawn to populate it.
func NewFleet(opts FleetOptions, sampler Sampler) *Fleet {
	return &Fleet{
		motion:      &motion{speed: opts.Speed, direction: opts.Direction},
		drop:        opts.Drop,
		spawnChance: opts.SpawnChance,
		formation:   ComputeFormation(opts.AlienW, opts.AlienH, opts.FieldW, opts.FieldH),
		sampler:     sampler,
	}
}

// Spawn replaces the fleet with a fresh random formation. Each grid cell
// independently receives an alien with the configured probability.
func (f *Fleet) Spawn() {
	f.Clear()
	for row := range f.formation.Rows {
		for col := range f.formation.Cols {
			if f.sampler.Float64() >= f.spawnChance {
				continue
			}
			x, y := f.formation.Cell(row, col)
			f.add(x, y)
		}
	}
}

// add places one alien at (x, y).
func (f *Fleet) add(x, y float64) *Alien {
	a := &Alien{
		Body:   Body{X: x, Y: y, W: f.formation.CellW, H: f.formation.CellH},
		motion: f.motion,
	}
	f.aliens = append(f.aliens, a)
	return a
}

// Update moves every alien one step, then checks the edges. The first alien
// found touching the left or right edge drops the whole fleet and flips the
// shared direction, once per frame. It reports whether that happened.
func (f *Fleet) Update(fieldW float64) bool {
	for _, a := range f.aliens {
		a.Advance()
	}

	for _, a := range f.aliens {
		if a.Bounds().TouchesHorizontalEdge(fieldW) {
			f.dropAll()
			f.motion.direction *= -1
			return true
		}
	}
	return false
}

// dropAll moves every alien down by the drop distance.
func (f *Fleet) dropAll() {
	for _, a := range f.aliens {
		a.translate(0, f.drop)
	}
}

// ReachedBottom reports whether any alien's bottom edge is at or below fieldH.
func (f *Fleet) ReachedBottom(fieldH float64) bool {
	for _, a := range f.aliens {
		if a.Bounds().Bottom() >= fieldH {
			return true
		}
	}
	return false
}

// CollidesWith reports whether any alien overlaps r.
func (f *Fleet) CollidesWith(r core.Rect) bool {
	for _, a := range f.aliens {
		if a.Bounds().Intersects(r) {
			return true
		}
	}
	return false
}

// ResolveHits removes every overlapping (bullet, alien) pair from both the
// arsenal and the fleet. The scan is read-only; removals happen afterwards.
// It returns the destroyed aliens.
func (f *Fleet) ResolveHits(arsenal *Arsenal) []*Alien {
	bullets := arsenal.Bullets()
	hitBullets := make(map[int]bool)
	hitAliens := make(map[int]bool)

	for ai, a := range f.aliens {
		box := a.Bounds()
		for bi, b := range bullets {
			if box.Intersects(b.Bounds()) {
				hitAliens[ai] = true
				hitBullets[bi] = true
			}
		}
	}

	if len(hitAliens) == 0 {
		return nil
	}

	destroyed := make([]*Alien, 0, len(hitAliens))
	n := 0
	for i, a := range f.aliens {
		if hitAliens[i] {
			destroyed = append(destroyed, a)
			continue
		}
		f.aliens[n] = a
		n++
	}
	for i := n; i < len(f.aliens); i++ {
		f.aliens[i] = nil
	}
	f.aliens = f.aliens[:n]

	arsenal.remove(hitBullets)
	return destroyed
}

// Clear removes all aliens.
func (f *Fleet) Clear() {
	for i := range f.aliens {
		f.aliens[i] = nil
	}
	f.aliens = f.aliens[:0]
}

// SetSpeed changes the horizontal speed shared by all aliens.
func (f *Fleet) SetSpeed(speed float64) {
	f.motion.speed = speed
}

// Speed returns the shared horizontal speed.
func (f *Fleet) Speed() float64 {
	return f.motion.speed
}

// SetDirection sets the shared direction (+1 or -1).
func (f *Fleet) SetDirection(dir int) {
	f.motion.direction = dir
}

// Direction returns the shared direction.
func (f *Fleet) Direction() int {
	return f.motion.direction
}

// Formation returns the spawn grid.
func (f *Fleet) Formation() Formation {
	return f.formation
}

// Empty reports whether every alien has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.aliens) == 0
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

// Aliens returns the live aliens. Callers must not modify the slice.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}
