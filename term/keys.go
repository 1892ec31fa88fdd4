package term

import (
	"github.com/gdamore/tcell/v2"

	"berry-snake/game"
	"berry-snake/game/types"
)

// ActionForKey maps a key press to a game action.
func ActionForKey(key tcell.Key, r rune) game.Action {
	switch key {
	case tcell.KeyUp:
		return game.Steer(types.Up)
	case tcell.KeyDown:
		return game.Steer(types.Down)
	case tcell.KeyLeft:
		return game.Steer(types.Left)
	case tcell.KeyRight:
		return game.Steer(types.Right)
	case tcell.KeyEnter:
		return game.Restart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyRune:
		return game.ActionForRune(r)
	}
	return game.Action{}
}
