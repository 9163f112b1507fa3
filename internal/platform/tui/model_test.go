package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

type memRecord struct {
	value int
	saves []int
	err   error
}

func (r *memRecord) Load() (int, error) { return r.value, nil }

func (r *memRecord) Save(score int) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, score)
	r.value = score
	return nil
}

type recordingPlayer struct{ played []audio.Sound }

func (p *recordingPlayer) Play(s audio.Sound) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close()             {}

type testEnv struct {
	model  Model
	record *memRecord
	player *recordingPlayer
	store  *storage.Store
	logs   *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	env := &testEnv{
		record: &memRecord{value: 200},
		player: &recordingPlayer{},
		store:  store,
		logs:   &bytes.Buffer{},
	}

	m, err := NewModel(Options{
		Settings:      cfg.Settings(cfg.Terminal),
		HUD:           cfg.HUD,
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Store:         store,
		Record:        env.record,
		Audio:         env.player,
		Logger:        log.New(env.logs),
		ScreenshotDir: filepath.Join(t.TempDir(), "shots"),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	env.model = m
	return env
}

func (e *testEnv) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := e.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	e.model = m
	return cmd
}

func TestNewModelLoadsHiScore(t *testing.T) {
	env := newTestEnv(t)

	if got := env.model.Game().Stats().HiScore; got != 200 {
		t.Errorf("HiScore = %d, expected 200 from the record", got)
	}
	w, h := env.model.Game().Field()
	// 23 rows below the HUD hold 11 alien rows in the upper half; trimming
	// to an even 10 leaves 21
	if w != 80 || h != 21 {
		t.Errorf("field = %vx%v, expected 80x21", w, h)
	}
}

func TestNewModelTooSmall(t *testing.T) {
	cfg := config.Default()
	_, err := NewModel(Options{
		Settings: cfg.Settings(cfg.Terminal),
		Runtime:  core.RuntimeConfig{ScreenW: 3, ScreenH: 10},
		Logger:   log.New(&bytes.Buffer{}),
	})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewModel() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestModelStartAndFire(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := env.send(t, TickMsg{}); cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if env.model.Game().Phase() != invaders.PhasePlaying {
		t.Fatalf("phase = %s, expected playing", env.model.Game().Phase())
	}
	if !strings.Contains(env.logs.String(), "battle started") {
		t.Errorf("start should be logged, log was %q", env.logs.String())
	}

	env.send(t, tea.KeyMsg{Type: tea.KeySpace})
	env.send(t, TickMsg{})
	if len(env.player.played) != 1 || env.player.played[0] != audio.SoundLaser {
		t.Errorf("played %v, expected one laser", env.player.played)
	}
	if got := env.model.Game().Ship().Arsenal().Len(); got != 1 {
		t.Errorf("bullets in flight = %d, expected 1", got)
	}
}

func TestModelSteeringReleasesAfterHold(t *testing.T) {
	env := newTestEnv(t)
	env.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	env.send(t, TickMsg{})

	env.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	env.send(t, TickMsg{})
	if !env.model.Game().Ship().MovingLeft() {
		t.Fatal("left press should start moving")
	}

	// keyHold at 60 ticks per second
	for range 31 {
		env.send(t, TickMsg{})
	}
	if env.model.Game().Ship().MovingLeft() {
		t.Error("ship should stop once no repeat arrives")
	}
}

func TestModelPersistsScores(t *testing.T) {
	env := newTestEnv(t)

	st := core.GameState{Score: 350, HiScore: 350, Level: 2}
	env.model.recorder.Handle(core.StepResult{
		State:  st,
		Events: []core.Event{core.EventImpact, core.EventHiScore, core.EventGameOver},
	})
	// A repeated game over must not duplicate the history row
	env.model.recorder.Handle(core.StepResult{State: st, Events: []core.Event{core.EventGameOver}})

	if len(env.record.saves) != 1 || env.record.saves[0] != 350 {
		t.Errorf("hi-score saves = %v, expected [350]", env.record.saves)
	}

	scores, err := env.store.TopScores(env.model.Game().ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 350 || scores[0].Level != 2 {
		t.Errorf("history = %+v, expected one 350/level 2 entry", scores)
	}

	if len(env.player.played) != 1 || env.player.played[0] != audio.SoundImpact {
		t.Errorf("played %v, expected one impact", env.player.played)
	}
}

func TestModelHiScoreSaveFailureIsLogged(t *testing.T) {
	env := newTestEnv(t)
	env.record.err = errors.New("disk full")

	env.model.recorder.Handle(core.StepResult{
		State:  core.GameState{Score: 50, HiScore: 250},
		Events: []core.Event{core.EventHiScore},
	})
	if !strings.Contains(env.logs.String(), "disk full") {
		t.Errorf("save failure should be logged, log was %q", env.logs.String())
	}
}

func TestModelZeroScoreNotRecorded(t *testing.T) {
	env := newTestEnv(t)

	env.model.recorder.Handle(core.StepResult{
		State:  core.GameState{Score: 0, Level: 1},
		Events: []core.Event{core.EventGameOver},
	})

	scores, err := env.store.TopScores(env.model.Game().ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be recorded, got %+v", scores)
	}
}

func TestModelQuit(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.send(t, keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if env.model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})
	w, h := env.model.Game().Field()
	if w != 98 || h != 29 {
		t.Errorf("field = %vx%v, expected 98x29", w, h)
	}
	if env.model.Game().Phase() != invaders.PhaseIdle {
		t.Errorf("resize should return to idle, got %s", env.model.Game().Phase())
	}
}

func TestModelFormationFitsField(t *testing.T) {
	for _, size := range []struct{ w, h int }{
		{80, 24}, {81, 24}, {82, 24}, {83, 25}, {87, 30}, {120, 40}, {121, 41},
	} {
		env := newTestEnv(t)
		env.send(t, tea.WindowSizeMsg{Width: size.w, Height: size.h})

		fw, fh := env.model.Game().Field()
		b := env.model.Game().Fleet().Formation().Bounds()
		if b.X <= 0 || b.Right() >= fw {
			t.Errorf("%dx%d: formation x %v..%v outside field width %v", size.w, size.h, b.X, b.Right(), fw)
		}
		if b.Y < 0 || b.Bottom() > fh/2 {
			t.Errorf("%dx%d: formation y %v..%v outside upper half of %v", size.w, size.h, b.Y, b.Bottom(), fh)
		}
	}
}

func TestModelFleetBouncesAtOddWidth(t *testing.T) {
	env := newTestEnv(t)
	env.send(t, tea.WindowSizeMsg{Width: 81, Height: 24})
	env.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	lives := env.model.settings.Gameplay.Lives
	for range 60 {
		env.send(t, TickMsg{})
	}
	if got := env.model.Game().Stats().Lives; got != lives {
		t.Errorf("lives = %d after one second, expected %d", got, lives)
	}
	if env.model.Game().Phase() != invaders.PhasePlaying {
		t.Errorf("phase = %s, expected playing", env.model.Game().Phase())
	}
}

func TestEvenFit(t *testing.T) {
	tests := []struct {
		size int
		cell float64
		want int
	}{
		{80, 3, 80},
		{81, 3, 80},
		{83, 3, 80},
		{100, 3, 98},
		{11, 1, 10},
		{3, 3, 3},
		{2, 3, 2},
		{0, 3, 0},
		{10, 0, 10},
	}
	for _, tt := range tests {
		if got := evenFit(tt.size, tt.cell); got != tt.want {
			t.Errorf("evenFit(%d, %v) = %d, expected %d", tt.size, tt.cell, got, tt.want)
		}
	}
}

func TestModelTooSmallPausesSimulation(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, tea.WindowSizeMsg{Width: 3, Height: 1})
	before := env.model.Game().Tick()
	env.send(t, TickMsg{})

	if env.model.Game().Tick() != before {
		t.Error("simulation should not advance while the terminal is too small")
	}
	if !strings.Contains(env.model.View(), "too small") {
		t.Error("view should explain the terminal is too small")
	}

	env.send(t, tea.WindowSizeMsg{Width: 80, Height: 24})
	env.send(t, TickMsg{})
	if env.model.Game().Tick() == before {
		t.Error("simulation should resume after growing the terminal")
	}
}

func TestModelView(t *testing.T) {
	env := newTestEnv(t)

	view := env.model.View()
	for _, want := range []string{"Score: 0", "Hi: 200", "ALIEN INVASION"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(env.model.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "invaders_") {
		t.Errorf("screenshots = %v, expected one invaders_*.txt", entries)
	}
}
