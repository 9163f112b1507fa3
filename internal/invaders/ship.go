package invaders

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player-controlled entity at the bottom of the field.
type Ship struct {
	Body
	speed       float64
	fieldW      float64
	fieldH      float64
	movingLeft  bool
	movingRight bool
	arsenal     *Arsenal
	bulletSpeed float64
}

// NewShip creates a ship centered at the bottom of a fieldW x fieldH field.
// Speeds start at zero; see SetSpeeds.
func NewShip(w, h, fieldW, fieldH float64, arsenal *Arsenal) *Ship {
	s := &Ship{
		Body:    Body{W: w, H: h},
		fieldW:  fieldW,
		fieldH:  fieldH,
		arsenal: arsenal,
	}
	s.Center()
	return s
}

// Center moves the ship to the bottom-center spawn point.
func (s *Ship) Center() {
	r := s.Bounds().AtMidBottom(s.fieldW, s.fieldH)
	s.X, s.Y = r.X, r.Y
}

// SetMovingLeft sets or clears the left movement intent.
func (s *Ship) SetMovingLeft(on bool) {
	s.movingLeft = on
}

// SetMovingRight sets or clears the right movement intent.
func (s *Ship) SetMovingRight(on bool) {
	s.movingRight = on
}

// StopMoving clears both movement intents.
func (s *Ship) StopMoving() {
	s.movingLeft = false
	s.movingRight = false
}

// MovingLeft reports the left intent.
func (s *Ship) MovingLeft() bool {
	return s.movingLeft
}

// MovingRight reports the right intent.
func (s *Ship) MovingRight() bool {
	return s.movingRight
}

// SetSpeeds updates the ship and bullet speeds after a difficulty change.
func (s *Ship) SetSpeeds(ship, bullet float64) {
	s.speed = ship
	s.bulletSpeed = bullet
}

// Velocity returns this frame's horizontal step. Each intent is checked
// independently against the current position, so both may apply.
func (s *Ship) Velocity() (float64, float64) {
	box := s.Bounds()
	dx := 0.0
	if s.movingRight && box.Right() < s.fieldW {
		dx += s.speed
	}
	if s.movingLeft && box.X > 0 {
		dx -= s.speed
	}
	return dx, 0
}

// Advance moves the ship one frame and keeps it inside the field.
func (s *Ship) Advance() {
	dx, dy := s.Velocity()
	s.translate(dx, dy)
	s.X = core.ClampF(s.X, 0, s.fieldW-s.W)
}

// Update moves the ship and advances its bullets.
func (s *Ship) Update() {
	s.Advance()
	s.arsenal.Update()
}

// Fire launches a bullet from the ship's nose.
// It returns false when the arsenal is at capacity.
func (s *Ship) Fire() bool {
	return s.arsenal.Fire(s, s.bulletSpeed)
}

// Arsenal returns the ship's bullet pool.
func (s *Ship) Arsenal() *Arsenal {
	return s.arsenal
}

// HitBy reports whether any alien overlaps the ship. On a hit the ship
// is moved back to its spawn point.
func (s *Ship) HitBy(f *Fleet) bool {
	if f.CollidesWith(s.Bounds()) {
		s.Center()
		return true
	}
	return false
}
