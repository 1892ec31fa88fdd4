package manager

import (
	"berry-snake/game/entity"
	"berry-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether moving the head onto pos would hit the snake.
// Every segment counts, the tail included, because trimming happens after the move.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.Occupies(pos)
}

// ValidateSpawnPosition checks that pos is on the grid, off the snake and not one of the blocked cells.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, blocked ...types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if snake.Occupies(pos) {
		return false
	}
	for _, b := range blocked {
		if pos == b {
			return false
		}
	}
	return true
}

// FreeCells lists every cell a pickup could spawn on.
func (cm *CollisionManager) FreeCells(snake *entity.Snake, blocked ...types.Point) []types.Point {
	occupied := make(map[types.Point]struct{}, len(snake.Body)+len(blocked))
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}
	for _, p := range blocked {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, max(cm.grid.Area()-len(occupied), 0))
	for _, c := range cm.grid.Cells() {
		if _, taken := occupied[c]; !taken {
			free = append(free, c)
		}
	}
	return free
}

// IsFoodCollision checks if a position collides with a pickup
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
