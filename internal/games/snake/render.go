package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellWidth is the number of terminal columns used for one grid cell,
// which keeps cells roughly square in a terminal font.
const CellWidth = 2

// BoardSize returns the screen size needed to draw a grid including its border.
func BoardSize(columns, rows int) (w, h int) {
	return columns*CellWidth + 2, rows + 2
}

// Render draws the board for s with its top-left border corner at (x, y).
// Segments outside the grid (a head that hit the wall) are not drawn.
func Render(dst *core.Screen, s Snapshot, x, y int) {
	w, h := BoardSize(s.Columns, s.Rows)
	dst.DrawBox(x, y, w, h, core.ColorBorder)

	cell := func(c core.Cell, left, right rune, color core.Color) {
		if c.X < 0 || c.X >= s.Columns || c.Y < 0 || c.Y >= s.Rows {
			return
		}
		sx := x + 1 + c.X*CellWidth
		sy := y + 1 + c.Y
		dst.Set(sx, sy, left, color)
		dst.Set(sx+1, sy, right, color)
	}

	if s.HasTarget {
		cell(s.Target, '(', ')', core.ColorTarget)
	}

	// Draw tail to head so the head wins on overlap.
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(s.Body[i], '█', '█', core.ColorSnakeHead)
		} else {
			cell(s.Body[i], '▓', '▓', core.ColorSnakeBody)
		}
	}

	switch s.Phase {
	case PhaseIdle:
		renderOverlay(dst, x, y, w, h, "Snake", "Press Enter to start")
	case PhaseEnded:
		title := "Game Over"
		if s.Cause == CauseBoardFull {
			title = "Board cleared!"
		}
		renderOverlay(dst, x, y, w, h, title, fmt.Sprintf("Score: %d  Enter to restart", s.Score))
	}
}

// renderOverlay draws a centered two-line message box inside the board area.
func renderOverlay(dst *core.Screen, x, y, w, h int, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := x + (w-boxW)/2
	boxY := y + (h-boxH)/2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorOverlay)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorOverlay)
	drawCentered(dst, boxX, boxW, boxY+1, line1)
	drawCentered(dst, boxX, boxW, boxY+3, line2)
}

func drawCentered(dst *core.Screen, x, w, y int, text string) {
	dst.DrawText(x+(w-len([]rune(text)))/2, y, text, core.ColorOverlay)
}
