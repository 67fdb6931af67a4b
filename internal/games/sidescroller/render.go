package sidescroller

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/ticking/internal/core"
)

// Sprite glyphs
const (
	GrassChar  = '▀'
	SoilChar   = '▓'
	BlockChar  = '█'
	CloudChar  = '░'
	CloudAlt   = '▒'
	SignChar   = '▤'
	PostChar   = '│'
	PlayerChar = '█'
	HeadChar   = '●'
)

// projection maps viewport pixels onto screen cells. The whole window is
// stretched over the terminal, so a cell is not square in pixels.
type projection struct {
	sx, sy float64 // Cells per pixel
	height float64 // Window height in pixels
}

func (g *Game) projection(dst *core.Screen) projection {
	w, h := g.camera.Size()
	return projection{
		sx:     float64(dst.Width()) / w,
		sy:     float64(dst.Height()) / h,
		height: h,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

// row flips the y axis: pixel y grows upward, rows grow downward.
func (p projection) row(y float64) int {
	return int(math.Floor((p.height - y) * p.sy))
}

// rect returns the cells covered by a viewport box, at least one cell.
func (p projection) rect(b core.Box) core.Rect {
	x0, x1 := p.col(b.Left()), p.col(b.Right())
	y0, y1 := p.row(b.Top()), p.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	proj := g.projection(dst)

	for _, s := range g.Sprites() {
		g.drawSprite(dst, proj, s)
	}

	dst.SetPen(core.ColorWhite)
	for _, l := range g.Labels() {
		x := core.Clamp(proj.col(l.X), 0, core.Max(0, dst.Width()-utf8.RuneCountInString(l.Text)))
		y := core.Clamp(proj.row(l.Y), 0, dst.Height()-1)
		dst.DrawText(x, y, l.Text)
	}

	switch g.machine.Mode() {
	case ModeStart:
		g.drawStart(dst)
	case ModePaused:
		drawMessage(dst, "PAUSED", "Press Esc or P to resume")
	case ModeInteracting:
		g.drawDialogue(dst)
	case ModeEnded:
		drawMessage(dst, "TIME'S UP",
			fmt.Sprintf("Distance: %d", g.Score()),
			"R restart  |  Tab scores  |  B back  |  Q quit")
	}
	dst.SetPen(core.ColorDefault)
}

func (g *Game) drawSprite(dst *core.Screen, proj projection, s Sprite) {
	r := proj.rect(s.Box)

	switch s.Kind {
	case SpriteCloud:
		dst.SetPen(core.ColorWhite)
		fill := CloudChar
		if s.Variant == 1 {
			fill = CloudAlt
		}
		dst.DrawRect(r, fill)

	case SpriteFloor:
		dst.SetPen(core.ColorBrown)
		dst.DrawRect(r, SoilChar)
		dst.SetPen(core.ColorGreen)
		dst.DrawHLine(r.X, r.Y, r.W, GrassChar)

	case SpriteBlock:
		dst.SetPen(core.ColorGray)
		dst.DrawRect(r, BlockChar)

	case SpriteObject:
		dst.SetPen(core.ColorYellow)
		board := r
		if r.H > 1 {
			board.H = (r.H + 1) / 2
		}
		dst.DrawRect(board, SignChar)
		for y := board.Bottom(); y < r.Bottom(); y++ {
			dst.Set(r.X+r.W/2, y, PostChar)
		}

	case SpritePlayer:
		dst.SetPen(core.ColorRed)
		dst.DrawRect(r, PlayerChar)
		dst.SetPen(core.ColorSky)
		dst.Set(r.X+r.W/2, r.Y, HeadChar)
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	subtitle := "Press Enter or Space to start"
	if _, pending := g.machine.Pending(); pending {
		subtitle = "Get ready..."
	}
	drawMessage(dst, "the clock is ticking...",
		subtitle,
		fmt.Sprintf("You have %s", FormatClock(g.clock.Length())))
}

func (g *Game) drawDialogue(dst *core.Screen) {
	o := g.Viewing()
	if o == nil {
		return
	}
	lines := append([]string{""}, o.Lines...)
	lines = append(lines, "", "Press E to exit")
	drawMessage(dst, o.Title, lines...)
}

// drawMessage draws a bordered box in the center of the screen with a title
// line followed by the given lines.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.SetPen(core.ColorWhite)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centered := func(y int, text string) {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(text))/2, y, text)
	}
	dst.SetPen(core.ColorYellow)
	centered(boxY+1, title)
	dst.SetPen(core.ColorWhite)
	for i, l := range lines {
		centered(boxY+3+i, l)
	}
}
