package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Tile colors are bold so
// the glyphs stand out against the frame.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	core.ColorPurple:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("93")),
	core.ColorPink:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
	core.ColorBrown:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var run strings.Builder
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
