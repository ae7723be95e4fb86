package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the current table into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), true)
}

// RenderSnapshot draws a snapshot into dst, scaling the playfield to fill
// the whole buffer. The net is optional.
func RenderSnapshot(dst *core.Screen, snap Snapshot, net bool) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	if net {
		// Dashed center line
		centerX, _ := Field.Project(dst, core.Vec2{})
		for y := 0; y < dst.Height(); y += 2 {
			dst.SetColored(centerX, y, NetChar, core.ColorGray)
		}
	}

	drawEntity(dst, snap.Paddle1, PaddleWidth, PaddleHeight, PaddleChar, core.ColorCyan)
	drawEntity(dst, snap.Paddle2, PaddleWidth, PaddleHeight, PaddleChar, core.ColorYellow)

	col, row := Field.Project(dst, snap.Ball)
	dst.SetColored(col, row, BallChar, core.ColorBrightWhite)

	switch snap.Phase {
	case PhaseIdle:
		dst.DrawTextCentered(0, " SPACE to serve ", core.ColorGreen)
	case PhaseEnded:
		drawCenteredMessage(dst, "RALLY OVER", "Press R to reset")
	}
}

// drawEntity fills the cells covered by a box centered at pos.
func drawEntity(dst *core.Screen, pos core.Vec2, w, h float64, r rune, c core.Color) {
	col, row := Field.Project(dst, pos)
	cw, ch := Field.Span(dst, w, h)
	dst.FillRect(col-cw/2, row-ch/2, cw, ch, r, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
