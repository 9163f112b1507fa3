package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// DefaultTheme returns the ANSI 256-color palette.
func DefaultTheme() Theme {
	return Theme{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorShip:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		core.ColorAlien:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// ThemeFromHUD returns the default palette with the HUD colors taken
// from the configuration.
func ThemeFromHUD(hud config.HUDConfig) Theme {
	t := DefaultTheme()
	if hud.Color != "" {
		t[core.ColorHUD] = lipgloss.NewStyle().Foreground(lipgloss.Color(hud.Color))
	}
	if hud.AccentColor != "" {
		t[core.ColorAccent] = lipgloss.NewStyle().Foreground(lipgloss.Color(hud.AccentColor)).Bold(true)
	}
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := theme[startColor]
			if !ok {
				style = theme[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
