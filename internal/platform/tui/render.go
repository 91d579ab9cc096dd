package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-ballpit/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences. Styles are cached per call rather than globally: ball
// colors mix continuously, so a shared cache would grow without bound.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style, 16)
	styleFor := func(c core.Color) lipgloss.Style {
		if style, ok := styles[c]; ok {
			return style
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		styles[c] = style
		return style
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Cells in the terminal's default color skip styling entirely.
			if startColor.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
