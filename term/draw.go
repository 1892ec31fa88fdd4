package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"berry-snake/game"
	"berry-snake/game/types"
	"berry-snake/stats"
)

const gameOverText = "Game Over! Press Enter or R to Retry."

// Canvas is the part of tcell.Screen the drawing code needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Layout: line 0 holds the scores, the bordered board starts on line 1 and
// the status line sits under it. Every cell is two columns wide.
const (
	boardTop  = 1
	boardLeft = 0
	cellWidth = 2
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleApple  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGolden = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleBerry  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleFaded  = tcell.StyleDefault.Foreground(tcell.ColorRebeccaPurple).Dim(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// CellPosition returns the screen column and line of the left half of p.
func CellPosition(p types.Point) (int, int) {
	return boardLeft + 1 + (p.Y-1)*cellWidth, boardTop + p.X
}

// Draw paints s onto c. pulse is the berry intensity from fx.BerryPulse.
func Draw(c Canvas, s game.Snapshot, pulse float32) {
	drawText(c, 0, 0, fmt.Sprintf("Score: %d", s.Score), styleText)
	high := fmt.Sprintf("Highscore: %d", s.Highscore)
	drawText(c, boardLeft+2+s.Width*cellWidth-len(high), 0, high, styleText)

	right := boardLeft + 1 + s.Width*cellWidth
	bottom := boardTop + s.Height + 1
	for x := boardLeft; x <= right; x++ {
		c.SetContent(x, boardTop, '─', nil, styleBorder)
		c.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := boardTop; y <= bottom; y++ {
		c.SetContent(boardLeft, y, '│', nil, styleBorder)
		c.SetContent(right, y, '│', nil, styleBorder)
	}
	c.SetContent(boardLeft, boardTop, '┌', nil, styleBorder)
	c.SetContent(right, boardTop, '┐', nil, styleBorder)
	c.SetContent(boardLeft, bottom, '└', nil, styleBorder)
	c.SetContent(right, bottom, '┘', nil, styleBorder)

	grid := types.Grid{Width: s.Width, Height: s.Height}
	for _, p := range grid.Cells() {
		r, style := glyph(s, p, pulse)
		x, y := CellPosition(p)
		c.SetContent(x, y, r, nil, style)
		c.SetContent(x+1, y, ' ', nil, style)
	}

	status := statusLine(s)
	clearLine(c, bottom+1, right+1)
	drawText(c, boardLeft, bottom+1, status, styleText)
}

func glyph(s game.Snapshot, p types.Point, pulse float32) (rune, tcell.Style) {
	switch s.CellAt(p) {
	case game.CellHead:
		return '@', styleHead
	case game.CellBody:
		return 'o', styleBody
	case game.CellApple:
		return '●', styleApple
	case game.CellGoldenApple:
		return '★', styleGolden
	case game.CellBerry:
		if pulse < 0.65 {
			return '◆', styleFaded
		}
		return '◆', styleBerry
	}
	return ' ', tcell.StyleDefault
}

func statusLine(s game.Snapshot) string {
	switch s.Phase {
	case game.PhaseOver:
		return gameOverText
	case game.PhasePaused:
		return "Paused. Space to resume."
	case game.PhaseIdle:
		return "Arrows or WASD to start. Q quits."
	}
	if s.Berry != nil {
		return fmt.Sprintf("Berry vanishes in %.1fs", s.Berry.Remaining.Seconds())
	}
	return ""
}

func drawText(c Canvas, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

func clearLine(c Canvas, y, width int) {
	for x := 0; x < width; x++ {
		c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// DrawSummary writes the game history on the line under the status line of a
// board with the given height.
func DrawSummary(c Canvas, height int, summary stats.Summary) {
	if summary.Games == 0 {
		return
	}
	text := fmt.Sprintf("Games %d  avg %.1f  best %d", summary.Games, summary.AverageScore, summary.BestScore)
	drawText(c, boardLeft, boardTop+height+3, text, styleBorder)
}
