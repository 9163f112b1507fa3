package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDifficulty
	ChoiceScoreboard
	ChoiceQuit
)

// menuItems is the main menu in display order.
var menuItems = []MenuChoice{ChoicePlay, ChoiceDifficulty, ChoiceScoreboard, ChoiceQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	hiScore    int
	difficulty int // Index into config.Presets
	config     core.RuntimeConfig
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. hiScore is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, hiScore int) MenuModel {
	m := MenuModel{
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		hiScore: hiScore,
		config:  cfg,
	}
	m.difficulty = presetIndex(preset)
	return m
}

// presetIndex returns the position of p in config.Presets, defaulting to normal.
func presetIndex(p config.DifficultyPreset) int {
	for i, candidate := range config.Presets {
		if candidate == p {
			return i
		}
	}
	return presetIndex(config.DifficultyNormal)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == ChoiceDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == ChoiceDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionSelect:
		item := menuItems[m.cursor]
		if item == ChoiceDifficulty {
			m.cycleDifficulty(1)
			return m, nil
		}
		m.choice = item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScoreboard
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(delta int) {
	n := len(config.Presets)
	m.difficulty = ((m.difficulty+delta)%n + n) % n
}

// label returns the menu text for an item.
func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Start Battle"
	case ChoiceDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case ChoiceScoreboard:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "A L I E N   I N V A S I O N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(dimStyle, fmt.Sprintf("Hi-Score: %d", m.hiScore), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + m.label(item)
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + m.label(item)
			style = activeStyle
		}
		b.WriteString(centerStyled(style, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled renders text with style and centers the plain text width.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, hiScore int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, hiScore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
