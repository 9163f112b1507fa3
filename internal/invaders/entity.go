package invaders

import "github.com/vovakirdan/alien-invasion/internal/core"

// Entity is anything that occupies a rectangle on the field and moves
// by a per-frame velocity. The closed set of variants is Ship, Alien and Bullet.
type Entity interface {
	// Bounds returns the bounding box derived from the current position.
	Bounds() core.Rect
	// Velocity returns the displacement applied by the next Advance.
	Velocity() (dx, dy float64)
	// Advance moves the entity by its velocity.
	Advance()
}

// Body is the position and size shared by all entities.
// There is no cached rectangle: Bounds is always computed from X and Y.
type Body struct {
	X, Y float64
	W, H float64
}

// Bounds returns the bounding box of the body.
func (b Body) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// translate moves the body by (dx, dy).
func (b *Body) translate(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// motion is the movement state shared by every alien of one fleet.
type motion struct {
	speed     float64
	direction int // +1 = right, -1 = left
}

// Alien is a single fleet member. Its horizontal velocity comes from
// the fleet's shared motion, so every alien moves by the same delta.
type Alien struct {
	Body
	motion *motion
}

// Velocity returns the fleet-wide horizontal step.
func (a *Alien) Velocity() (float64, float64) {
	return a.motion.speed * float64(a.motion.direction), 0
}

// Advance moves the alien one frame.
func (a *Alien) Advance() {
	dx, dy := a.Velocity()
	a.translate(dx, dy)
}

// Bullet is a projectile fired by the ship. It travels straight up.
type Bullet struct {
	Body
	speed float64
}

// Velocity returns the fixed upward step.
func (b *Bullet) Velocity() (float64, float64) {
	return 0, -b.speed
}

// Advance moves the bullet one frame.
func (b *Bullet) Advance() {
	dx, dy := b.Velocity()
	b.translate(dx, dy)
}

// Compile-time checks that all variants implement Entity.
var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Alien)(nil)
	_ Entity = (*Bullet)(nil)
)
