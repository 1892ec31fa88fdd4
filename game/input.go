package game

import (
	"unicode"

	"berry-snake/game/types"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSteer
	ActionPause
	ActionRestart
	ActionQuit
)

// Action is a player command, independent of the front end that produced it.
type Action struct {
	Kind ActionKind
	Dir  types.Direction
}

func Steer(dir types.Direction) Action {
	return Action{Kind: ActionSteer, Dir: dir}
}

var (
	Pause   = Action{Kind: ActionPause}
	Restart = Action{Kind: ActionRestart}
	Quit    = Action{Kind: ActionQuit}
)

// ActionForRune maps the letter keys every front end shares: WASD steer,
// space pauses, R restarts and Q quits.
func ActionForRune(r rune) Action {
	switch unicode.ToLower(r) {
	case 'w':
		return Steer(types.Up)
	case 'a':
		return Steer(types.Left)
	case 's':
		return Steer(types.Down)
	case 'd':
		return Steer(types.Right)
	case ' ':
		return Pause
	case 'r':
		return Restart
	case 'q':
		return Quit
	}
	return Action{}
}
