package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"berry-snake/game"
	"berry-snake/game/types"
)

var keyActions = map[int32]game.Action{
	rl.KeyUp:    game.Steer(types.Up),
	rl.KeyDown:  game.Steer(types.Down),
	rl.KeyLeft:  game.Steer(types.Left),
	rl.KeyRight: game.Steer(types.Right),
	rl.KeyEnter: game.Restart,
	rl.KeyQ:     game.Quit,
}

// PollActions collects the actions for keys pressed since the last frame.
func PollActions() []game.Action {
	var actions []game.Action
	for key, action := range keyActions {
		if rl.IsKeyPressed(key) {
			actions = append(actions, action)
		}
	}
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if a := game.ActionForRune(r); a.Kind != game.ActionNone && a.Kind != game.ActionQuit {
			actions = append(actions, a)
		}
	}
	return actions
}
