package ai

import (
	"math"

	"berry-snake/game"
	"berry-snake/game/types"
)

const (
	berryWeight = 4.0
	spaceWeight = 0.25
)

// Autopilot steers the snake for the demo mode: it heads for the apple along
// the wrap-aware shortest path, keeps away from the berry and never turns into
// a cell that is about to be occupied.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Next picks the direction for the coming tick.
func (a *Autopilot) Next(s game.Snapshot) types.Direction {
	if s.Over || len(s.Body) == 0 {
		return s.Direction
	}

	grid := types.Grid{Width: s.Width, Height: s.Height}
	best := s.Direction
	bestValue := math.Inf(-1)

	for _, dir := range candidates(s.Direction) {
		value := a.evaluate(s, grid, dir)
		if value > bestValue || (value == bestValue && dir == s.Direction) {
			best, bestValue = dir, value
		}
	}
	return best
}

func candidates(current types.Direction) []types.Direction {
	if current.IsZero() {
		return types.Cardinals[:]
	}
	return []types.Direction{current, current.TurnLeft(), current.TurnRight()}
}

// evaluate scores a move: higher is better, -Inf is fatal.
func (a *Autopilot) evaluate(s game.Snapshot, grid types.Grid, dir types.Direction) float64 {
	next := grid.Step(s.Head(), dir)
	if isDanger(s, next) {
		return math.Inf(-1)
	}

	value := 0.0
	if s.HasApple {
		if next == s.Apple {
			return math.Inf(1)
		}
		value -= float64(grid.Distance(next, s.Apple))
	}
	if s.Berry != nil && next == s.Berry.Pos {
		value -= berryWeight
	}

	// prefer cells that leave room to keep moving
	free := 0
	for _, d := range types.Cardinals {
		if !isDanger(s, grid.Step(next, d)) {
			free++
		}
	}
	value += spaceWeight * float64(free)
	return value
}

// isDanger reports whether moving onto p ends the game. The tail counts: it is
// only trimmed after the head has moved.
func isDanger(s game.Snapshot, p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
