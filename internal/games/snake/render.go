package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Score line plus separator

	// MinScreenW and MinScreenH are the smallest terminal that fits the board.
	MinScreenW = 24
	MinScreenH = 12

	// Title is shown above the speed prompt.
	Title = "S N A K E   G A M E"
)

// Render draws a snapshot onto dst. The board is scaled to fit under the HUD.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if s.State == StateConfiguring || s.State == StateQuit {
		dst.DrawTextCentered(dst.Height()/3, Title, core.ColorBrightWhite)
		return
	}

	renderHUD(dst, s)

	v := newViewport(dst, s.BoardW, s.BoardH)
	dst.DrawBox(v.frame, core.ColorGray)

	if s.BonusActive {
		v.plotDisc(dst, s.Bonus.Pos, s.Bonus.Radius, '$', core.ColorYellow)
	}
	v.plot(dst, s.Food.Pos, '*', core.ColorGreen)

	for i, seg := range s.Body {
		if i == len(s.Body)-1 {
			v.plot(dst, seg, '@', core.ColorBrightRed)
			continue
		}
		v.plot(dst, seg, 'o', core.ColorRed)
	}

	if s.State == StateGameOver {
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Your Score - %d", s.Score))
	}
}

func renderHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score - %d", s.Score), core.ColorBrightWhite)

	speed := fmt.Sprintf("Speed %d", s.Speed)
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// viewport maps board coordinates into the cells inside the frame.
type viewport struct {
	frame  core.Rect
	inner  core.Rect
	boardW int
	boardH int
}

func newViewport(dst *core.Screen, boardW, boardH int) viewport {
	frame := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	return viewport{
		frame:  frame,
		inner:  core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		boardW: boardW,
		boardH: boardH,
	}
}

// cell returns the screen cell for a board point. Board coordinates run
// over [0, W] x [0, H] inclusive.
func (v viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(p.X, 0, v.boardW) * (v.inner.W - 1) / max(v.boardW, 1)
	y := core.Clamp(p.Y, 0, v.boardH) * (v.inner.H - 1) / max(v.boardH, 1)
	return v.inner.X + x, v.inner.Y + y
}

func (v viewport) plot(dst *core.Screen, p core.Vec, r rune, c core.Color) {
	x, y := v.cell(p)
	dst.SetColored(x, y, r, c)
}

// plotDisc fills the cells covered by a disc of the given board radius.
func (v viewport) plotDisc(dst *core.Screen, center core.Vec, radius int, r rune, c core.Color) {
	cx, cy := v.cell(center)
	rx := radius * (v.inner.W - 1) / max(v.boardW, 1)
	ry := radius * (v.inner.H - 1) / max(v.boardH, 1)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			// Ellipse test in cell space.
			if rx > 0 && ry > 0 && dx*dx*ry*ry+dy*dy*rx*rx > rx*rx*ry*ry {
				continue
			}
			x, y := cx+dx, cy+dy
			if v.inner.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	blank := strings.Repeat(" ", box.W-2)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawText(box.X+1, y, blank)
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorBrightWhite)
}
