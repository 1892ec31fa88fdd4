package types

import "time"

// Point is a 1-based grid cell. X indexes rows, Y indexes columns.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	MinGridSize = 10
	MaxGridSize = 30

	TickInterval  = 200 * time.Millisecond
	FrameInterval = 16 * time.Millisecond

	BerryLifetime    = 10 * time.Second
	BerrySpawnChance = 0.45
	GoldenChance     = 0.10

	NormalAppleGain = 1
	GoldenAppleGain = 3
	BerryPenalty    = 2
)

// Valid reports whether both dimensions lie in [MinGridSize, MaxGridSize].
func (g Grid) Valid() bool {
	return g.Width >= MinGridSize && g.Width <= MaxGridSize &&
		g.Height >= MinGridSize && g.Height <= MaxGridSize
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p is a cell of the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// Wrap folds p back onto the grid so that leaving one edge re-enters at the opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrapAxis(p.X, g.Width), Y: wrapAxis(p.Y, g.Height)}
}

// Step moves p by one unit along d and wraps the result.
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(Point{X: p.X + d.DX, Y: p.Y + d.DY})
}

// Cells returns every cell of the grid in row-major order.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Area())
	for x := 1; x <= g.Width; x++ {
		for y := 1; y <= g.Height; y++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

func wrapAxis(v, extent int) int {
	m := (v - 1) % extent
	if m < 0 {
		m += extent
	}
	return m + 1
}

// ClampDimension clamps a requested grid size into [MinGridSize, MaxGridSize].
func ClampDimension(v int) int {
	if v < MinGridSize {
		return MinGridSize
	}
	if v > MaxGridSize {
		return MaxGridSize
	}
	return v
}
