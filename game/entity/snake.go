package entity

import (
	"berry-snake/game/types"
)

// Snake is an ordered head-first body plus the length it is converging to.
type Snake struct {
	Body         []types.Point
	Direction    types.Direction
	TargetLength int
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		Direction:    types.None,
		TargetLength: 1,
	}
}

// Move pushes a new head in front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// Trim drops tail segments until the body matches the target length.
func (s *Snake) Trim() {
	if len(s.Body) > s.TargetLength {
		s.Body = s.Body[:s.TargetLength]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Grow raises the target length by n.
func (s *Snake) Grow(n int) {
	s.TargetLength += n
}

// Shrink lowers the target length by n, never below one segment.
func (s *Snake) Shrink(n int) {
	s.TargetLength -= n
	if s.TargetLength < 1 {
		s.TargetLength = 1
	}
}

// SetDirection applies dir unless it would turn the snake back onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.IsUnit() || dir.Reverses(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}
