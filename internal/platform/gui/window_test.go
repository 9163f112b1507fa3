package gui

import (
	"bytes"
	"errors"
	"image/color"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
)

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []core.Action
		quit     bool
	}{
		{"move left", []ebiten.Key{ebiten.KeyLeft}, nil, []core.Action{core.ActionLeftStart}, false},
		{"release right", nil, []ebiten.Key{ebiten.KeyD}, []core.Action{core.ActionRightStop}, false},
		{"fire and start", []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, nil,
			[]core.Action{core.ActionRestart, core.ActionFire}, false},
		{"press before release", []ebiten.Key{ebiten.KeyRight}, []ebiten.Key{ebiten.KeyLeft},
			[]core.Action{core.ActionRightStart, core.ActionLeftStop}, false},
		{"pause", []ebiten.Key{ebiten.KeyP}, nil, []core.Action{core.ActionPause}, false},
		{"quit", []ebiten.Key{ebiten.KeyQ}, nil, []core.Action{core.ActionQuit}, true},
		{"release fire is ignored", nil, []ebiten.Key{ebiten.KeySpace}, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := MapKeys(tc.pressed, tc.released, &frame)
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if !slices.Equal(frame.Actions, tc.want) {
				t.Errorf("actions = %v, expected %v", frame.Actions, tc.want)
			}
		})
	}
}

func newTestWindow(t *testing.T) (*Window, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	var logs bytes.Buffer
	w, err := NewWindow(Options{
		Settings: cfg.Settings(cfg.Window),
		Screen:   cfg.Window.Screen,
		HUD:      cfg.HUD,
		Seed:     11,
		Logger:   log.New(&logs),
	})
	if err != nil {
		t.Fatalf("NewWindow() failed: %v", err)
	}
	return w, &logs
}

func TestNewWindowRejectsTinyField(t *testing.T) {
	cfg := config.Default()
	_, err := NewWindow(Options{
		Settings: cfg.Settings(cfg.Window),
		Screen:   config.ScreenConfig{Width: 10, Height: 10},
		Logger:   log.New(&bytes.Buffer{}),
	})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewWindow() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestWindowLayout(t *testing.T) {
	w, _ := newTestWindow(t)
	if gw, gh := w.Layout(640, 480); gw != 1200 || gh != 800 {
		t.Errorf("Layout() = %dx%d, expected 1200x800", gw, gh)
	}
}

func TestWindowClickStartsBattle(t *testing.T) {
	w, logs := newTestWindow(t)

	// Off the button
	w.Click(5, 5)
	if err := w.step(false); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if w.Game().Phase() != invaders.PhaseIdle {
		t.Fatalf("click off the button started the game")
	}

	cx, cy := w.buttonRect().Center()
	w.Click(cx, cy)
	if err := w.step(false); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if w.Game().Phase() != invaders.PhasePlaying {
		t.Errorf("phase = %s, expected playing", w.Game().Phase())
	}
	if !strings.Contains(logs.String(), "battle started") {
		t.Error("start should be logged")
	}

	// The button is gone while a battle runs
	w.Click(cx, cy)
	if w.frame.Has(core.ActionRestart) {
		t.Error("click during a battle should be ignored")
	}
}

func TestWindowQuitTerminates(t *testing.T) {
	w, _ := newTestWindow(t)
	before := w.Game().Tick()

	if err := w.step(true); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step(quit) = %v, expected ebiten.Termination", err)
	}
	if w.Game().Tick() != before {
		t.Error("quit frame should not simulate")
	}
}

func TestLoadSpritesMissingFile(t *testing.T) {
	var logs bytes.Buffer
	s := LoadSprites(config.AssetsConfig{Ship: filepath.Join(t.TempDir(), "nope.png")}, log.New(&logs))

	if s.Ship != nil || s.Alien != nil {
		t.Error("missing sprites should fall back to rectangles")
	}
	if !strings.Contains(logs.String(), "sprite unavailable") {
		t.Errorf("missing sprite should be logged, log was %q", logs.String())
	}
}

func TestParseColor(t *testing.T) {
	r, g, b, _ := parseColor("#ff0000", color.Black).RGBA()
	if r>>8 != 0xff || g != 0 || b != 0 {
		t.Errorf("parseColor(#ff0000) = %d,%d,%d", r>>8, g>>8, b>>8)
	}

	for _, bad := range []string{"", "red", "#12"} {
		if got := parseColor(bad, color.White); got != color.White {
			t.Errorf("parseColor(%q) = %v, expected fallback", bad, got)
		}
	}
}
