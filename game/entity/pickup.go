package entity

import (
	"berry-snake/game/types"
)

// AppleKind distinguishes the regular apple from the high value golden one.
type AppleKind int

const (
	NormalApple AppleKind = iota
	GoldenApple
)

func (k AppleKind) String() string {
	if k == GoldenApple {
		return "golden"
	}
	return "normal"
}

// Gain is the growth and score awarded for eating the apple.
func (k AppleKind) Gain() int {
	if k == GoldenApple {
		return types.GoldenAppleGain
	}
	return types.NormalAppleGain
}

type Apple struct {
	Pos  types.Point
	Kind AppleKind
}

// Berry is the transient penalty pickup. Its lifetime lives in the berry timer.
type Berry struct {
	Pos types.Point
}
