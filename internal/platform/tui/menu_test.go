package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func menuSend(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMenuStartBattle(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 0)
	m = menuSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Choice() != ChoicePlay {
		t.Errorf("Choice() = %d, expected ChoicePlay", m.Choice())
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %s, expected normal", m.Difficulty())
	}
}

func TestMenuCycleDifficulty(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want config.DifficultyPreset
	}{
		{"right", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, config.DifficultyHard},
		{"left", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, config.DifficultyEasy},
		{"wraps left", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}}, config.DifficultyFixed},
		{"enter cycles", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, config.DifficultyHard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 0)
			m = menuSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
			m = menuSend(t, m, tc.keys...)

			if m.Difficulty() != tc.want {
				t.Errorf("Difficulty() = %s, expected %s", m.Difficulty(), tc.want)
			}
			if m.Choice() != ChoiceNone {
				t.Errorf("changing difficulty should keep the menu open, got choice %d", m.Choice())
			}
		})
	}
}

func TestMenuLeftRightIgnoredOffDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy, 0)
	m = menuSend(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %s, expected easy", m.Difficulty())
	}
}

func TestMenuUnknownPresetDefaultsToNormal(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 0)
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %s, expected normal", m.Difficulty())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want MenuChoice
	}{
		{"scores item", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, ChoiceScoreboard},
		{"tab", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, ChoiceScoreboard},
		{"quit item", []tea.Msg{keyRunes("j"), keyRunes("j"), keyRunes("j"), keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter}}, ChoiceQuit},
		{"q", []tea.Msg{keyRunes("q")}, ChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuSend(t, NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 0), tc.keys...)
			if m.Choice() != tc.want {
				t.Errorf("Choice() = %d, expected %d", m.Choice(), tc.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard, 1500)
	view := m.View()

	for _, want := range []string{"A L I E N", "Hi-Score: 1500", "Start Battle", "Difficulty: < hard >", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuResize(t *testing.T) {
	m := menuSend(t, NewMenuModel(core.DefaultConfig(), "", 0), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
