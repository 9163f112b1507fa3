package invaders

// Arsenal is the ship's bounded pool of bullets in flight.
type Arsenal struct {
	bullets []*Bullet
	max     int
	width   float64
	height  float64
}

// NewArsenal creates an empty arsenal holding at most max bullets of the given size.
func NewArsenal(max int, width, height float64) *Arsenal {
	return &Arsenal{
		bullets: make([]*Bullet, 0, max),
		max:     max,
		width:   width,
		height:  height,
	}
}

// Fire spawns a bullet whose bottom-center sits on the top-center of the
// ship. It returns false and leaves the pool unchanged when at capacity.
func (a *Arsenal) Fire(ship *Ship, speed float64) bool {
	if len(a.bullets) >= a.max {
		return false
	}

	box := ship.Bounds()
	a.bullets = append(a.bullets, &Bullet{
		Body: Body{
			X: box.CenterX() - a.width/2,
			Y: box.Y - a.height,
			W: a.width,
			H: a.height,
		},
		speed: speed,
	})
	return true
}

// Update advances every bullet and drops those that have fully left the
// top of the field.
func (a *Arsenal) Update() {
	for _, b := range a.bullets {
		b.Advance()
	}
	a.retain(func(b *Bullet) bool {
		return b.Bounds().Bottom() > 0
	})
}

// retain keeps the bullets for which keep returns true, preserving order.
func (a *Arsenal) retain(keep func(*Bullet) bool) {
	n := 0
	for _, b := range a.bullets {
		if keep(b) {
			a.bullets[n] = b
			n++
		}
	}
	for i := n; i < len(a.bullets); i++ {
		a.bullets[i] = nil
	}
	a.bullets = a.bullets[:n]
}

// remove deletes the bullets at the given indexes.
func (a *Arsenal) remove(hit map[int]bool) {
	if len(hit) == 0 {
		return
	}
	i := -1
	a.retain(func(*Bullet) bool {
		i++
		return !hit[i]
	})
}

// SetMax changes the capacity. Bullets beyond the new capacity are dropped,
// newest first.
func (a *Arsenal) SetMax(max int) {
	a.max = max
	if len(a.bullets) > max {
		i := -1
		a.retain(func(*Bullet) bool {
			i++
			return i < max
		})
	}
}

// Max returns the capacity.
func (a *Arsenal) Max() int {
	return a.max
}

// Clear removes all bullets.
func (a *Arsenal) Clear() {
	a.retain(func(*Bullet) bool { return false })
}

// Len returns the number of bullets in flight.
func (a *Arsenal) Len() int {
	return len(a.bullets)
}

// Bullets returns the bullets in flight. Callers must not modify the slice.
func (a *Arsenal) Bullets() []*Bullet {
	return a.bullets
}
