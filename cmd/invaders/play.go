package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a battle in the terminal.

Controls:
  Left/Right, A/D   - Move (keeps moving while the key repeats)
  Down/S            - Stop
  Space/Up          - Fire
  Enter             - Start Battle / restart after game over
  P/Esc             - Pause
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 42 --fps 30`,
	RunE: runPlay,
}

// terminalSize returns the profile size, or the terminal size when the
// profile leaves it at zero.
func terminalSize(profileW, profileH int) (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if profileW > 0 {
		width = profileW
	}
	if profileH > 0 {
		height = profileH
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	return playTerminal(a)
}

// playTerminal runs one terminal session with the app's current config.
func playTerminal(a *app) error {
	profile := a.cfg.Terminal
	settings := a.cfg.Settings(profile)
	width, height := terminalSize(profile.Screen.Width, profile.Screen.Height)

	player := a.newAudio()
	defer player.Close()

	a.logger.Info("terminal session", "width", width, "height", height,
		"difficulty", a.cfg.Difficulty.Preset, "fps", settings.FPS)

	err := tui.Run(tui.Options{
		Settings: settings,
		HUD:      a.cfg.HUD,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: settings.FPS,
			Seed:     flagSeed,
		},
		Store:  a.store,
		Record: a.record,
		Audio:  player,
		Logger: a.logger,
	})
	if errors.Is(err, tui.ErrTooSmall) {
		return fmt.Errorf("%w (have %dx%d)", err, width, height)
	}
	return err
}
