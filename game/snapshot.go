package game

import (
	"time"

	"berry-snake/game/entity"
	"berry-snake/game/types"
)

// Cell is what occupies a grid cell, as seen by a renderer.
type Cell int

const (
	CellEmpty Cell = iota
	CellHead
	CellBody
	CellApple
	CellGoldenApple
	CellBerry
)

// BerryState is the visible part of an active berry.
type BerryState struct {
	Pos       types.Point
	Remaining time.Duration
}

// Snapshot is an immutable copy of the game for presentation layers.
type Snapshot struct {
	Width, Height int

	Body         []types.Point
	Direction    types.Direction
	TargetLength int

	HasApple  bool
	Apple     types.Point
	AppleKind entity.AppleKind
	Berry     *BerryState

	Score     int
	Highscore int

	Phase   Phase
	Running bool
	Over    bool
	Reason  OverReason
}

// Snapshot copies the current state.
func (g *GameState) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	s := Snapshot{
		Width:        g.Grid.Width,
		Height:       g.Grid.Height,
		Body:         body,
		Direction:    g.snake.Direction,
		TargetLength: g.snake.TargetLength,
		HasApple:     g.hasApple,
		Apple:        g.apple.Pos,
		AppleKind:    g.apple.Kind,
		Score:        g.stateMgr.Score(),
		Highscore:    g.stateMgr.GetHighScore(),
		Phase:        g.Phase(),
		Running:      g.running,
		Over:         g.over,
		Reason:       g.reason,
	}
	if g.berry != nil {
		s.Berry = &BerryState{Pos: g.berry.Pos, Remaining: g.berryTimer.Remaining()}
	}
	return s
}

// CellAt reports what sits on p. The snake is drawn over pickups.
func (s Snapshot) CellAt(p types.Point) Cell {
	for i, part := range s.Body {
		if part == p {
			if i == 0 {
				return CellHead
			}
			return CellBody
		}
	}
	if s.HasApple && s.Apple == p {
		if s.AppleKind == entity.GoldenApple {
			return CellGoldenApple
		}
		return CellApple
	}
	if s.Berry != nil && s.Berry.Pos == p {
		return CellBerry
	}
	return CellEmpty
}

// Head returns the first body segment.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// CellAt reports what sits on p in the live game.
func (g *GameState) CellAt(p types.Point) Cell {
	return g.Snapshot().CellAt(p)
}

func (g *GameState) Score() int {
	return g.stateMgr.Score()
}

func (g *GameState) Highscore() int {
	return g.stateMgr.GetHighScore()
}

func (g *GameState) IsOver() bool {
	return g.over
}

func (g *GameState) IsRunning() bool {
	return g.running
}

func (g *GameState) Direction() types.Direction {
	return g.snake.Direction
}

// Length is the current number of body segments.
func (g *GameState) Length() int {
	return len(g.snake.Body)
}

// TargetLength is the length the body converges to.
func (g *GameState) TargetLength() int {
	return g.snake.TargetLength
}
