package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ticking/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.SetPen(core.ColorYellow)
	s.DrawText(0, 0, "Time:")
	s.SetPen(core.ColorRed)
	s.DrawText(6, 0, "10:00")

	// A renderer on a plain buffer has no color profile, so output is text.
	out := RenderScreen(s, NewPalette(lipgloss.NewRenderer(&bytes.Buffer{})))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Time: 10:00 " {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestPaletteFallback(t *testing.T) {
	p := NewPalette(nil)
	if got := p.Style(core.Color(200)).Render("x"); got != p.Style(core.ColorDefault).Render("x") {
		t.Errorf("expected unknown colors to use the default style, got %q", got)
	}
}
