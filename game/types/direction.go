package types

// Direction is a unit step on the grid. The zero value means "not yet moving".
type Direction struct {
	DX, DY int
}

// Cardinal directions. Rows grow downwards, columns grow to the right.
var (
	None  = Direction{}
	Up    = Direction{DX: -1, DY: 0}
	Down  = Direction{DX: 1, DY: 0}
	Left  = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 0, DY: 1}
)

// Cardinals lists the four moving directions in clockwise order starting at Up.
var Cardinals = [4]Direction{Up, Right, Down, Left}

// IsZero reports whether d is the "not yet moving" direction.
func (d Direction) IsZero() bool {
	return d == None
}

// IsUnit reports whether d is one of the four cardinal directions.
func (d Direction) IsUnit() bool {
	return (abs(d.DX) == 1 && d.DY == 0) || (d.DX == 0 && abs(d.DY) == 1)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Reverses reports whether d points exactly against other. A zero direction reverses nothing.
func (d Direction) Reverses(other Direction) bool {
	return !other.IsZero() && d == other.Reverse()
}

// TurnLeft returns the direction after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return "invalid"
	}
}
