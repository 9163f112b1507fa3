package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invaders"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start Alien Invasion in interactive menu mode.

Pick a difficulty, start a battle or browse the score history.
After a battle you return to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - Scores
  Q             - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	width, height := terminalSize(0, 0)
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height}
	preset := config.DifficultyPreset(a.cfg.Difficulty.Preset)

	for {
		result, err := tui.RunMenu(cfg, preset, a.hiScore())
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScoreboard:
			goBack, err := tui.RunScoreboard(a.store, invaders.GameID, "Alien Invasion", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			preset = result.Difficulty
			if err := a.usePreset(string(preset)); err != nil {
				return err
			}
			if err := playTerminal(a); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
