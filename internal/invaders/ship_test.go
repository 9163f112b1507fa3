package invaders

import "testing"

func newTestShip(maxBullets int) *Ship {
	s := NewShip(40, 60, 1200, 800, NewArsenal(maxBullets, 25, 80))
	s.SetSpeeds(5, 7)
	return s
}

func TestShipSpawnsBottomCenter(t *testing.T) {
	s := newTestShip(3)
	if s.X != 580 || s.Y != 740 {
		t.Errorf("ship at (%v, %v), expected (580, 740)", s.X, s.Y)
	}
}

func TestShipMovesBySpeed(t *testing.T) {
	s := newTestShip(3)
	s.SetMovingRight(true)
	for range 10 {
		s.Update()
	}
	if s.X != 630 {
		t.Errorf("x = %v after 10 frames, expected 630", s.X)
	}

	s.SetMovingRight(false)
	s.SetMovingLeft(true)
	s.Update()
	if s.X != 625 {
		t.Errorf("x = %v, expected 625", s.X)
	}
}

func TestShipBothIntentsCancel(t *testing.T) {
	s := newTestShip(3)
	s.SetMovingLeft(true)
	s.SetMovingRight(true)
	s.Update()
	if s.X != 580 {
		t.Errorf("x = %v, expected 580", s.X)
	}
}

func TestShipClamp(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		right bool
		want  float64
	}{
		{"overshoot right", 1157, true, 1160},
		{"at right edge", 1160, true, 1160},
		{"overshoot left", 3, false, 0},
		{"at left edge", 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShip(3)
			s.X = tc.start
			s.SetMovingRight(tc.right)
			s.SetMovingLeft(!tc.right)

			for range 5 {
				s.Update()
			}
			if s.X != tc.want {
				t.Errorf("x = %v, expected %v", s.X, tc.want)
			}
		})
	}
}

func TestShipFireAtCapacity(t *testing.T) {
	s := newTestShip(3)

	for i := range 3 {
		if !s.Fire() {
			t.Fatalf("fire %d should succeed", i)
		}
	}
	if s.Fire() {
		t.Error("fire at capacity should return false")
	}
	if s.Arsenal().Len() != 3 {
		t.Errorf("arsenal holds %d bullets, expected 3", s.Arsenal().Len())
	}
}

func TestShipFirePosition(t *testing.T) {
	s := newTestShip(3)
	s.Fire()

	b := s.Arsenal().Bullets()[0].Bounds()
	if b.CenterX() != s.Bounds().CenterX() {
		t.Errorf("bullet center x = %v, expected %v", b.CenterX(), s.Bounds().CenterX())
	}
	if b.Bottom() != s.Y {
		t.Errorf("bullet bottom = %v, expected ship top %v", b.Bottom(), s.Y)
	}
}

func TestShipHitByRecenters(t *testing.T) {
	s := newTestShip(3)
	f := newTestFleet(constSampler(1))
	s.X = 100
	f.add(110, 720)

	if !s.HitBy(f) {
		t.Fatal("overlapping alien should hit the ship")
	}
	if s.X != 580 {
		t.Errorf("ship x = %v, expected recenter to 580", s.X)
	}
	if s.HitBy(f) {
		t.Error("recentered ship should be clear of the alien")
	}
}

func TestArsenalUpdateRemovesOffscreen(t *testing.T) {
	a := NewArsenal(5, 3, 15)
	a.bullets = []*Bullet{
		{Body: Body{X: 10, Y: -14, W: 3, H: 15}, speed: 1},
		{Body: Body{X: 20, Y: 10, W: 3, H: 15}, speed: 1},
	}

	a.Update()

	if a.Len() != 1 {
		t.Fatalf("arsenal holds %d bullets, expected 1", a.Len())
	}
	if got := a.Bullets()[0]; got.X != 20 || got.Y != 9 {
		t.Errorf("remaining bullet at (%v, %v), expected (20, 9)", got.X, got.Y)
	}
}

func TestArsenalNeverExceedsMax(t *testing.T) {
	s := newTestShip(2)
	for range 50 {
		s.Fire()
		s.Update()
		if s.Arsenal().Len() > 2 {
			t.Fatalf("arsenal holds %d bullets, max is 2", s.Arsenal().Len())
		}
	}
}

func TestArsenalSetMaxTrims(t *testing.T) {
	s := newTestShip(5)
	for range 5 {
		s.Fire()
	}
	first := s.Arsenal().Bullets()[0]

	s.Arsenal().SetMax(2)

	if s.Arsenal().Len() != 2 {
		t.Errorf("arsenal holds %d bullets, expected 2", s.Arsenal().Len())
	}
	if s.Arsenal().Bullets()[0] != first {
		t.Error("oldest bullets should be kept")
	}
	if s.Fire() {
		t.Error("fire should fail at the new capacity")
	}
}

func TestArsenalZeroMax(t *testing.T) {
	s := newTestShip(0)
	if s.Fire() {
		t.Error("fire should fail with zero capacity")
	}
}
