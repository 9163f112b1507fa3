package tui

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/session"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// keyHold is how long a movement key counts as held after its last
// press or auto-repeat. It must outlast the terminal's initial repeat delay.
const keyHold = 500 * time.Millisecond

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.invaders/screenshots"

// Options configures a terminal session.
type Options struct {
	Settings config.Settings
	HUD      config.HUDConfig
	Runtime  core.RuntimeConfig // Terminal size; the HUD row is taken from it

	Store         *storage.Store         // Score history, may be nil
	Record        invaders.HiScoreRecord // Persisted hi-score, may be nil
	Audio         audio.Player           // Defaults to audio.Nop
	Logger        *log.Logger            // Defaults to log.Default()
	ScreenshotDir string
}

// Model is the Bubble Tea model running Alien Invasion in a terminal.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	theme    Theme
	settings config.Settings
	config   core.RuntimeConfig

	recorder      *session.Recorder
	logger        *log.Logger
	screenshotDir string

	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	tooSmall   bool
	quitting   bool
}

// fieldConfig returns the runtime config for the playfield below the HUD.
// The field is trimmed so the alien fit count across the width and the upper
// half is even, which keeps the formation inside the field.
func fieldConfig(cfg core.RuntimeConfig, s config.Settings) core.RuntimeConfig {
	cfg.ScreenH -= invaders.HUDRows

	cfg.ScreenW = evenFit(cfg.ScreenW, s.Alien.Width)
	half := cfg.ScreenH / 2
	cfg.ScreenH -= 2 * (half - evenFit(half, s.Alien.Height))
	return cfg
}

// evenFit shrinks size until an odd count of cells above one becomes even.
func evenFit(size int, cell float64) int {
	if cell <= 0 {
		return size
	}
	for size > 0 {
		n := int(math.Floor(float64(size) / cell))
		if n <= 1 || n%2 == 0 {
			break
		}
		size--
	}
	return size
}

// NewModel creates the model and its game. It fails when the settings do not
// fit the terminal.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Settings.FPS
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}

	recorder := session.NewRecorder(session.Options{
		GameID: invaders.GameID,
		Store:  opts.Store,
		Record: opts.Record,
		Audio:  opts.Audio,
		Logger: logger,
	})

	game, err := invaders.New(opts.Settings, fieldConfig(cfg, opts.Settings), recorder.LoadHiScore())
	if err != nil {
		return Model{}, fmt.Errorf("terminal %dx%d: %w", cfg.ScreenW, cfg.ScreenH, err)
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:         ThemeFromHUD(opts.HUD),
		settings:      opts.Settings,
		config:        cfg,
		recorder:      recorder,
		logger:        logger,
		screenshotDir: dir,
		keys:          NewKeyMapper(int(keyHold.Seconds() * float64(cfg.TickRate))),
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
	}, nil
}

// Game returns the running game.
func (m Model) Game() *invaders.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.recorder.Abandon(m.game.State())
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rebuilds the playfield for a new terminal size.
// A battle in progress is recorded and abandoned.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	field := fieldConfig(m.config, m.settings)
	if err := config.Validate(m.settings, field.ScreenW, field.ScreenH); err != nil {
		m.tooSmall = true
		m.logger.Warn("terminal too small", "width", msg.Width, "height", msg.Height, "error", err)
		return m, nil
	}
	m.tooSmall = false

	m.recorder.Abandon(m.game.State())
	m.game.Reset(field)
	m.keys.Reset()
	m.gameState = m.game.State()
	m.logger.Debug("playfield resized", "width", field.ScreenW, "height", field.ScreenH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.keys.Tick(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Handle(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(m.screenshotDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("writing screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		msg := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).
			Render("Terminal too small for Alien Invasion")
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme)
}

// ErrTooSmall is returned by Run when the terminal cannot hold the ship.
var ErrTooSmall = errors.New("terminal too small")

// Run starts the Bubble Tea program for one terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return fmt.Errorf("%w: %w", ErrTooSmall, err)
		}
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
