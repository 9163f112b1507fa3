package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a battle in a desktop window using the window profile.

Controls:
  Left/Right, A/D   - Move
  Space             - Fire
  Enter / click     - Start Battle / restart after game over
  P                 - Pause
  Q/Esc             - Quit

Sprites are read from the assets section of the config; without them
the ship, aliens and bullets are drawn as flat rectangles.

Examples:
  invaders window
  invaders window --difficulty hard --record sqlite`,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	profile := a.cfg.Window
	a.logger.Info("window session", "width", profile.Screen.Width, "height", profile.Screen.Height,
		"difficulty", a.cfg.Difficulty.Preset)

	return gui.Run(gui.Options{
		Settings: a.cfg.Settings(profile),
		Screen:   profile.Screen,
		HUD:      a.cfg.HUD,
		Assets:   a.cfg.Assets,
		Seed:     flagSeed,
		Store:    a.store,
		Record:   a.record,
		Audio:    a.newAudio(),
		Logger:   a.logger,
	})
}
