package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berry-snake/game"
	"berry-snake/game/types"
)

func snapshot(body []types.Point, dir types.Direction, apple types.Point) game.Snapshot {
	return game.Snapshot{
		Width:        10,
		Height:       10,
		Body:         body,
		Direction:    dir,
		TargetLength: len(body),
		HasApple:     true,
		Apple:        apple,
	}
}

func TestAutopilotHeadsForApple(t *testing.T) {
	a := NewAutopilot()

	s := snapshot([]types.Point{{X: 5, Y: 5}}, types.None, types.Point{X: 5, Y: 8})
	assert.Equal(t, types.Right, a.Next(s))

	s = snapshot([]types.Point{{X: 5, Y: 5}}, types.None, types.Point{X: 2, Y: 5})
	assert.Equal(t, types.Up, a.Next(s))
}

func TestAutopilotUsesWrap(t *testing.T) {
	a := NewAutopilot()
	s := snapshot([]types.Point{{X: 5, Y: 2}}, types.Up, types.Point{X: 5, Y: 10})
	assert.Equal(t, types.Left, a.Next(s))
}

func TestAutopilotNeverReverses(t *testing.T) {
	a := NewAutopilot()
	s := snapshot([]types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, types.Right, types.Point{X: 5, Y: 1})
	assert.NotEqual(t, types.Left, a.Next(s))
}

func TestAutopilotAvoidsBody(t *testing.T) {
	a := NewAutopilot()
	body := []types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 5}, {X: 4, Y: 6}}
	s := snapshot(body, types.Right, types.Point{X: 1, Y: 5})

	dir := a.Next(s)
	assert.NotEqual(t, types.Up, dir)
	assert.NotEqual(t, types.Left, dir)
}

func TestAutopilotAvoidsBerry(t *testing.T) {
	a := NewAutopilot()
	s := snapshot([]types.Point{{X: 5, Y: 5}}, types.Right, types.Point{X: 5, Y: 9})
	s.Berry = &game.BerryState{Pos: types.Point{X: 5, Y: 6}}

	assert.NotEqual(t, types.Right, a.Next(s))
}

func TestAutopilotPlaysAGame(t *testing.T) {
	g, err := game.New(12, 12, game.WithSeed(11))
	require.NoError(t, err)
	a := NewAutopilot()

	eaten := 0
	for i := 0; i < 400 && !g.IsOver(); i++ {
		dir := a.Next(g.Snapshot())
		g.SetDirection(dir.DX, dir.DY)
		switch g.AdvanceTick().Outcome {
		case game.OutcomeApple, game.OutcomeGoldenApple:
			eaten++
		}
	}
	assert.Greater(t, eaten, 3)
}
