package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ticking/internal/core"
)

// Palette maps core.Color to lipgloss styles. Styles are bound to a
// renderer so SSH sessions get the color profile of the remote terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette creates the palette for the given renderer. A nil renderer
// uses the lipgloss default (stdout).
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorBlack:   fg("0"),
		core.ColorWhite:   fg("15"),
		core.ColorGreen:   fg("2"),
		core.ColorBrown:   fg("94"),
		core.ColorGray:    fg("245"),
		core.ColorSky:     fg("39"),
		core.ColorYellow:  fg("11"),
		core.ColorRed:     fg("9"),
	}}
}

// Style returns the style for a color, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
