package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// Visual characters for rendering
const (
	ShipChar   = '▲'
	AlienChar  = '▼'
	BulletChar = '│'
	LifeChar   = '♥'
)

// Render draws the HUD row and the playfield into dst.
// dst must be HUDRows taller than the field.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, a := range g.fleet.Aliens() {
		dst.DrawRect(a.Bounds(), HUDRows, AlienChar, core.ColorAlien)
	}
	for _, b := range g.ship.Arsenal().Bullets() {
		dst.DrawRect(b.Bounds(), HUDRows, BulletChar, core.ColorBullet)
	}
	if g.phase != PhaseRespawning || g.tick%10 < 5 {
		dst.DrawRect(g.ship.Bounds(), HUDRows, ShipChar, core.ColorShip)
	}

	g.renderHUD(dst)

	midY := HUDRows + dst.Height()/2 - 1
	switch g.phase {
	case PhaseIdle:
		g.drawOverlay(dst, midY, "ALIEN INVASION", "Enter: Start Battle  |  Q: Quit", core.ColorAccent)
	case PhasePaused:
		g.drawOverlay(dst, midY, "PAUSED", "P: Resume", core.ColorHUD)
	case PhaseGameOver:
		g.drawOverlay(dst, midY, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Enter: Start Battle  |  Q: Quit", g.stats.Score), core.ColorAlert)
	}
}

// renderHUD draws score, max-score, hi-score, level and lives on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.stats
	dst.FillBox(0, 0, dst.Width(), HUDRows)
	left := fmt.Sprintf(" Score: %d  Max: %d  Hi: %d ", s.Score, s.MaxScore, s.HiScore)
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	lives := strings.Repeat(string(LifeChar), core.Max(s.Lives, 0))
	right := fmt.Sprintf(" Level %d  %s ", s.Level, lives)
	x := dst.Width() - len([]rune(right))
	dst.DrawTextColored(core.Max(x, 0), 0, right, core.ColorAccent)
}

// drawOverlay draws a boxed two-line message centered on row y.
func (g *Game) drawOverlay(dst *core.Screen, y int, title, subtitle string, titleColor core.Color) {
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	x := (dst.Width() - w) / 2
	dst.FillBox(x, y-1, w, 4)
	dst.DrawBox(x, y-1, w, 4)
	dst.DrawTextColored((dst.Width()-len([]rune(title)))/2, y, title, titleColor)
	dst.DrawTextCentered(y+1, subtitle)
}
