package manager

import (
	"berry-snake/game/entity"
	"berry-snake/game/types"
)

// spawnAttempts bounds rejection sampling before falling back to the free-cell list.
const spawnAttempts = 32

// FoodManager places apples and berries on free cells.
type FoodManager struct {
	grid         types.Grid
	rng          types.RNG
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.RNG, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateApple picks a free cell and rolls the apple kind.
// It reports false when the snake covers the whole grid.
func (fm *FoodManager) GenerateApple(snake *entity.Snake) (entity.Apple, bool) {
	pos, ok := fm.pickFree(snake)
	if !ok {
		return entity.Apple{}, false
	}
	kind := entity.NormalApple
	if fm.rng.Float64() < types.GoldenChance {
		kind = entity.GoldenApple
	}
	return entity.Apple{Pos: pos, Kind: kind}, true
}

// RollBerry decides whether the apple just spawned brings a berry with it.
func (fm *FoodManager) RollBerry() bool {
	return fm.rng.Float64() < types.BerrySpawnChance
}

// GenerateBerry picks a free cell that is neither on the snake nor on the apple.
func (fm *FoodManager) GenerateBerry(snake *entity.Snake, apple types.Point) (entity.Berry, bool) {
	pos, ok := fm.pickFree(snake, apple)
	if !ok {
		return entity.Berry{}, false
	}
	return entity.Berry{Pos: pos}, true
}

// pickFree samples uniformly among free cells. While the grid is mostly empty it
// resamples random cells; once that budget is spent, or when the grid is crowded,
// it draws from the explicit free list so it always terminates.
func (fm *FoodManager) pickFree(snake *entity.Snake, blocked ...types.Point) (types.Point, bool) {
	occupied := len(snake.Body) + len(blocked)
	if occupied*2 < fm.grid.Area() {
		for i := 0; i < spawnAttempts; i++ {
			p := fm.grid.RandomCell(fm.rng)
			if fm.collisionMgr.ValidateSpawnPosition(p, snake, blocked...) {
				return p, true
			}
		}
	}

	free := fm.collisionMgr.FreeCells(snake, blocked...)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
