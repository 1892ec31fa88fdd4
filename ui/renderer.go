package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"berry-snake/fx"
	"berry-snake/game"
	"berry-snake/game/entity"
	"berry-snake/game/types"
	"berry-snake/stats"
)

const (
	borderPadding = 10
	headerHeight  = 40
)

const gameOverText = "Game Over! Press Enter or R to Retry."

var (
	berryColor  = rl.Color{R: 142, G: 68, B: 173, A: 255}
	goldenColor = rl.Gold
	headColor   = rl.Color{R: 46, G: 204, B: 113, A: 255}
	bodyColor   = rl.Color{R: 39, G: 174, B: 96, A: 255}
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32

	pulse   *fx.BerryPulse
	summary stats.Summary
}

func NewRenderer() *Renderer {
	r := &Renderer{pulse: fx.NewBerryPulse()}
	r.UpdateDimensions()
	return r
}

// SetSummary updates the game history shown under the board.
func (r *Renderer) SetSummary(summary stats.Summary) {
	r.summary = summary
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame of s. dt is the wall time since the previous frame
// and drives the berry pulse.
func (r *Renderer) Draw(s game.Snapshot, dt time.Duration) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - headerHeight*2 - borderPadding*2
	r.cellSize = min(availableWidth/int32(s.Width), availableHeight/int32(s.Height))

	gridWidth := r.cellSize * int32(s.Width)
	gridHeight := r.cellSize * int32(s.Height)
	r.offsetX = (r.screenWidth - gridWidth) / 2
	r.offsetY = headerHeight + (r.screenHeight-headerHeight*2-gridHeight)/2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridWidth+2, gridHeight+2, rl.DarkGray)
	for col := int32(0); col < int32(s.Width); col++ {
		for row := int32(0); row < int32(s.Height); row++ {
			rl.DrawRectangleLines(r.offsetX+col*r.cellSize, r.offsetY+row*r.cellSize, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	if s.HasApple {
		color := rl.Red
		if s.AppleKind == entity.GoldenApple {
			color = goldenColor
		}
		r.fillCell(s.Apple, color)
	}

	if s.Berry != nil {
		alpha := r.pulse.Update(dt, s.Berry.Remaining)
		r.fillCell(s.Berry.Pos, rl.Fade(berryColor, alpha))
	} else {
		r.pulse.Reset()
	}

	for i := len(s.Body) - 1; i >= 0; i-- {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		r.fillCell(s.Body[i], color)
	}
	if len(s.Body) > 0 && !s.Direction.IsZero() {
		r.drawHeading(s.Body[0], s.Direction)
	}

	r.drawHeader(s)
	r.drawSummary(r.offsetY + gridHeight + 4)
	r.drawBanner(s)
	rl.EndDrawing()
}

// cellOrigin converts a 1-based (row, column) point to screen pixels.
func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.Y-1)*r.cellSize, r.offsetY + int32(p.X-1)*r.cellSize
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	x, y := r.cellOrigin(p)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x, y := r.cellOrigin(head)
	px, py := float32(x), float32(y)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: px + size, Y: py + half}, rl.Vector2{X: px + half, Y: py}, rl.Vector2{X: px + half, Y: py + size}
	case types.Left:
		a, b, c = rl.Vector2{X: px, Y: py + half}, rl.Vector2{X: px + half, Y: py + size}, rl.Vector2{X: px + half, Y: py}
	case types.Down:
		a, b, c = rl.Vector2{X: px + half, Y: py + size}, rl.Vector2{X: px + size, Y: py + half}, rl.Vector2{X: px, Y: py + half}
	default:
		a, b, c = rl.Vector2{X: px + half, Y: py}, rl.Vector2{X: px, Y: py + half}, rl.Vector2{X: px + size, Y: py + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawHeader(s game.Snapshot) {
	fontSize := int32(20)
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), borderPadding, borderPadding, fontSize, rl.White)

	high := fmt.Sprintf("Highscore: %d", s.Highscore)
	width := rl.MeasureText(high, fontSize)
	rl.DrawText(high, r.screenWidth-width-borderPadding, borderPadding, fontSize, rl.White)
}

func (r *Renderer) drawSummary(y int32) {
	if r.summary.Games == 0 {
		return
	}
	text := fmt.Sprintf("Games: %d  Avg: %.1f  Median: %.1f  Best: %d  Avg time: %s",
		r.summary.Games, r.summary.AverageScore, r.summary.MedianScore, r.summary.BestScore,
		r.summary.AverageDuration.Round(time.Second))
	rl.DrawText(text, r.offsetX, y, 16, rl.LightGray)
}

func (r *Renderer) drawBanner(s game.Snapshot) {
	var text string
	switch s.Phase {
	case game.PhaseOver:
		text = gameOverText
	case game.PhasePaused:
		text = "Paused"
	case game.PhaseIdle:
		text = "Press an arrow key to start"
	default:
		return
	}

	fontSize := min(r.cellSize, 28)
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, r.screenHeight/2-fontSize/2, fontSize, rl.RayWhite)
}
