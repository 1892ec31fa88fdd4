package types

// RNG is the subset of a random source the spawners need.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is the Manhattan distance between two cells, taking grid wrapping into account.
func (g Grid) Distance(p1, p2 Point) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

// RandomCell picks a uniformly random cell of the grid.
func (g Grid) RandomCell(rng RNG) Point {
	return Point{X: rng.Intn(g.Width) + 1, Y: rng.Intn(g.Height) + 1}
}
