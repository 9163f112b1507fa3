// Package gui runs Alien Invasion in a desktop window with Ebitengine.
// Entities are drawn from the game's pixel-space geometry; the HUD and
// overlays use the basicfont bitmap face.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/session"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Start button size in pixels
const (
	buttonW = 200
	buttonH = 50
)

// Options configures the window frontend.
type Options struct {
	Settings config.Settings
	Screen   config.ScreenConfig
	HUD      config.HUDConfig
	Assets   config.AssetsConfig
	Seed     int64

	Store  *storage.Store
	Record invaders.HiScoreRecord
	Audio  audio.Player
	Logger *log.Logger
}

// Window is an ebiten.Game driving one Alien Invasion session.
type Window struct {
	game     *invaders.Game
	recorder *session.Recorder
	logger   *log.Logger

	width  int
	height int

	sprites   Sprites
	face      *text.GoXFace
	fontScale float64
	padding   float64
	hudColor  color.Color
	accent    color.Color

	pressed  []ebiten.Key
	released []ebiten.Key
	frame    core.InputFrame
}

// NewWindow builds the game for the window profile. Sprites are not loaded;
// call LoadSprites once the graphics device exists.
func NewWindow(opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	recorder := session.NewRecorder(session.Options{
		GameID: invaders.GameID,
		Store:  opts.Store,
		Record: opts.Record,
		Audio:  opts.Audio,
		Logger: logger,
	})

	cfg := core.RuntimeConfig{
		ScreenW:  opts.Screen.Width,
		ScreenH:  opts.Screen.Height,
		TickRate: opts.Settings.FPS,
		Seed:     opts.Seed,
	}
	game, err := invaders.New(opts.Settings, cfg, recorder.LoadHiScore())
	if err != nil {
		return nil, fmt.Errorf("window %dx%d: %w", cfg.ScreenW, cfg.ScreenH, err)
	}

	scale := float64(opts.HUD.FontScale)
	if scale < 1 {
		scale = 1
	}

	return &Window{
		game:      game,
		recorder:  recorder,
		logger:    logger,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		face:      text.NewGoXFace(basicfont.Face7x13),
		fontScale: scale,
		padding:   float64(opts.HUD.Padding),
		hudColor:  parseColor(opts.HUD.Color, color.Black),
		accent:    parseColor(opts.HUD.AccentColor, color.White),
		frame:     core.NewInputFrame(),
	}, nil
}

// Game returns the running game.
func (w *Window) Game() *invaders.Game {
	return w.game
}

// LoadSprites loads the configured images.
func (w *Window) LoadSprites(assets config.AssetsConfig) {
	w.sprites = LoadSprites(assets, w.logger)
}

// Update collects input edges and advances the game by one frame.
func (w *Window) Update() error {
	w.pressed = inpututil.AppendJustPressedKeys(w.pressed[:0])
	w.released = inpututil.AppendJustReleasedKeys(w.released[:0])
	quit := MapKeys(w.pressed, w.released, &w.frame)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.Click(float64(x), float64(y))
	}

	return w.step(quit)
}

// Click presses the start button when (x, y) is on it and no battle is running.
func (w *Window) Click(x, y float64) {
	if !w.game.Active() && w.buttonRect().Contains(x, y) {
		w.frame.Set(core.ActionRestart)
	}
}

// step runs the simulation on the collected frame.
func (w *Window) step(quit bool) error {
	if quit {
		w.recorder.Abandon(w.game.State())
		return ebiten.Termination
	}

	result := w.game.Step(w.frame)
	w.recorder.Handle(result)
	w.frame.Clear()
	return nil
}

// buttonRect is the Start Battle button, centered on the field.
func (w *Window) buttonRect() core.Rect {
	return core.NewRect(float64(w.width-buttonW)/2, float64(w.height-buttonH)/2, buttonW, buttonH)
}

// Draw renders the field, the HUD and the current overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.sprites.Background != nil {
		drawEntity(screen, w.sprites.Background, core.NewRect(0, 0, float64(w.width), float64(w.height)), colorBackground)
	} else {
		screen.Fill(colorBackground)
	}

	snap := w.game.Snapshot()
	for _, a := range snap.Aliens {
		drawEntity(screen, w.sprites.Alien, a, colorAlien)
	}
	for _, b := range snap.Bullets {
		drawEntity(screen, w.sprites.Bullet, b, colorBullet)
	}
	if snap.Phase != invaders.PhaseRespawning || snap.Tick%20 < 10 {
		drawEntity(screen, w.sprites.Ship, snap.Ship, colorShip)
	}

	w.drawHUD(screen, &snap)

	switch snap.Phase {
	case invaders.PhaseIdle:
		w.drawButton(screen, "Start Battle")
	case invaders.PhaseGameOver:
		w.drawBanner(screen, "GAME OVER", float64(w.height)/2-2*buttonH)
		w.drawButton(screen, "Start Battle")
	case invaders.PhasePaused:
		w.drawBanner(screen, "PAUSED", float64(w.height)/2)
	}
}

// drawHUD draws lives top-left, hi-score centered and score with level
// top-right.
func (w *Window) drawHUD(screen *ebiten.Image, st *invaders.Snapshot) {
	lineH := w.lineHeight()

	// Remaining lives as small ships
	iconW, iconH := st.Ship.W/2, st.Ship.H/2
	for i := range st.Lives {
		r := core.NewRect(w.padding/2+float64(i)*(iconW+4), w.padding/2, iconW, iconH)
		drawEntity(screen, w.sprites.Ship, r, colorShip)
	}

	w.drawText(screen, fmt.Sprintf("Hi: %d  Max: %d", st.HiScore, st.MaxScore),
		float64(w.width)/2, w.padding/2, text.AlignCenter, w.hudColor)
	w.drawText(screen, fmt.Sprintf("Score: %d", st.Score),
		float64(w.width)-w.padding, w.padding/2, text.AlignEnd, w.hudColor)
	w.drawText(screen, fmt.Sprintf("Level %d", st.Level),
		float64(w.width)-w.padding, w.padding/2+lineH, text.AlignEnd, w.hudColor)
}

func (w *Window) drawButton(screen *ebiten.Image, label string) {
	r := w.buttonRect()
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorButton, false)
	cx, cy := r.Center()
	w.drawText(screen, label, cx, cy-w.lineHeight()/2, text.AlignCenter, color.White)
}

func (w *Window) drawBanner(screen *ebiten.Image, label string, y float64) {
	h := w.lineHeight() * 2
	vector.DrawFilledRect(screen, 0, float32(y-h/2), float32(w.width), float32(h), colorShade, false)
	w.drawText(screen, label, float64(w.width)/2, y-w.lineHeight()/2, text.AlignCenter, w.accent)
}

func (w *Window) lineHeight() float64 {
	return w.face.Metrics().HAscent*w.fontScale + w.face.Metrics().HDescent*w.fontScale + 4
}

// drawText draws a single line with its top edge at y.
func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(w.fontScale, w.fontScale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, w.face, op)
}

// Layout keeps the logical screen at the configured field size;
// ebiten scales it to the window.
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

// Close releases audio.
func (w *Window) Close() {
	w.recorder.Close()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := NewWindow(opts)
	if err != nil {
		return err
	}
	defer w.Close()
	w.LoadSprites(opts.Assets)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Settings.FPS)

	err = ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	w.recorder.Abandon(w.game.State())
	return nil
}
