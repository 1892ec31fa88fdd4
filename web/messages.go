package web

import (
	"berry-snake/game"
	"berry-snake/game/entity"
	"berry-snake/game/types"
)

const (
	msgDirection = "direction"
	msgPause     = "pause"
	msgRestart   = "restart"
	msgState     = "state"
	msgError     = "error"
)

// clientMessage is anything a player sends over the socket.
type clientMessage struct {
	Type string `json:"type"`
	DX   int    `json:"dx"`
	DY   int    `json:"dy"`
}

func (m clientMessage) action() (game.Action, bool) {
	switch m.Type {
	case msgDirection:
		return game.Steer(types.Direction{DX: m.DX, DY: m.DY}), true
	case msgPause:
		return game.Pause, true
	case msgRestart:
		return game.Restart, true
	}
	return game.Action{}, false
}

type pointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type directionDTO struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

type appleDTO struct {
	pointDTO
	Golden bool `json:"golden"`
}

type berryDTO struct {
	pointDTO
	RemainingMs int64 `json:"remainingMs"`
}

type stateMessage struct {
	Type      string       `json:"type"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Snake     []pointDTO   `json:"snake"`
	Direction directionDTO `json:"direction"`
	Apple     *appleDTO    `json:"apple,omitempty"`
	Berry     *berryDTO    `json:"berry,omitempty"`
	Score     int          `json:"score"`
	Highscore int          `json:"highscore"`
	Phase     string       `json:"phase"`
	Over      bool         `json:"over"`
	Reason    string       `json:"reason,omitempty"`
	Event     string       `json:"event,omitempty"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type highscoreResponse struct {
	Highscore int `json:"highscore"`
}

func newStateMessage(u game.Update) stateMessage {
	s := u.Snapshot
	m := stateMessage{
		Type:      msgState,
		Width:     s.Width,
		Height:    s.Height,
		Snake:     make([]pointDTO, len(s.Body)),
		Direction: directionDTO{DX: s.Direction.DX, DY: s.Direction.DY},
		Score:     s.Score,
		Highscore: s.Highscore,
		Phase:     s.Phase.String(),
		Over:      s.Over,
		Event:     eventName(u.Outcome),
	}
	for i, p := range s.Body {
		m.Snake[i] = pointDTO{X: p.X, Y: p.Y}
	}
	if s.HasApple {
		m.Apple = &appleDTO{
			pointDTO: pointDTO{X: s.Apple.X, Y: s.Apple.Y},
			Golden:   s.AppleKind == entity.GoldenApple,
		}
	}
	if s.Berry != nil {
		m.Berry = &berryDTO{
			pointDTO:    pointDTO{X: s.Berry.Pos.X, Y: s.Berry.Pos.Y},
			RemainingMs: s.Berry.Remaining.Milliseconds(),
		}
	}
	if s.Over {
		m.Reason = s.Reason.String()
	}
	return m
}

func eventName(o game.Outcome) string {
	switch o {
	case game.OutcomeApple:
		return "apple"
	case game.OutcomeGoldenApple:
		return "goldenApple"
	case game.OutcomeBerry:
		return "berry"
	case game.OutcomeGameOver:
		return "gameOver"
	}
	return ""
}
