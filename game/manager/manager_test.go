package manager

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"berry-snake/game/entity"
	"berry-snake/game/types"
)

type memStore struct {
	value   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadHighscore() (int, error) { return m.value, m.loadErr }

func (m *memStore) SaveHighscore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = score
	return nil
}

func TestStateManagerScoring(t *testing.T) {
	store := &memStore{value: 2}
	sm := NewStateManager(store)
	require.Equal(t, 2, sm.GetHighScore())

	sm.AddScore(1)
	assert.Empty(t, store.saves)

	sm.AddScore(3)
	assert.Equal(t, 4, sm.Score())
	assert.Equal(t, 4, sm.GetHighScore())
	assert.Equal(t, []int{4}, store.saves)

	sm.Penalize(2)
	assert.Equal(t, 2, sm.Score())
	assert.Equal(t, 4, sm.GetHighScore())

	sm.Penalize(5)
	assert.Equal(t, 0, sm.Score())
}

func TestStateManagerDegradesOnStoreErrors(t *testing.T) {
	sm := NewStateManager(&memStore{value: 40, loadErr: errors.New("corrupt")})
	assert.Equal(t, 0, sm.GetHighScore())

	failing := &memStore{saveErr: errors.New("disk full")}
	sm = NewStateManager(failing)
	sm.AddScore(1)
	assert.Equal(t, 1, sm.GetHighScore())
	assert.Equal(t, []int{1}, failing.saves)

	sm = NewStateManager(&memStore{value: -7})
	assert.Equal(t, 0, sm.GetHighScore())

	sm = NewStateManager(nil)
	sm.AddScore(2)
	assert.Equal(t, 2, sm.GetHighScore())
}

func TestBerryTimerTick(t *testing.T) {
	var bt BerryTimer
	assert.False(t, bt.Tick(time.Second))

	bt.Reset(types.BerryLifetime, time.Now())
	assert.False(t, bt.Tick(4*time.Second))
	assert.Equal(t, 6*time.Second, bt.Remaining())
	assert.True(t, bt.Tick(6*time.Second))

	bt.Clear()
	assert.False(t, bt.Active())
}

func TestBerryTimerFrozenWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var bt BerryTimer
	bt.Reset(types.BerryLifetime, start)

	now := start
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		bt.Frame(now, true)
	}
	require.Equal(t, 9*time.Second, bt.Remaining())

	for i := 0; i < 300; i++ {
		now = now.Add(100 * time.Millisecond)
		assert.False(t, bt.Frame(now, false))
	}
	assert.Equal(t, 9*time.Second, bt.Remaining())

	now = now.Add(50 * time.Millisecond)
	bt.Frame(now, true)
	assert.Equal(t, 9*time.Second-50*time.Millisecond, bt.Remaining())
}

func TestGenerateAppleAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	rng := rand.New(rand.NewSource(7))
	fm := NewFoodManager(grid, rng, NewCollisionManager(grid))

	snake := entity.NewSnake(types.Point{X: 1, Y: 1})
	snake.Body = grid.Cells()[:60]

	for i := 0; i < 500; i++ {
		apple, ok := fm.GenerateApple(snake)
		require.True(t, ok)
		assert.False(t, snake.Occupies(apple.Pos))
		assert.True(t, grid.Contains(apple.Pos))

		berry, ok := fm.GenerateBerry(snake, apple.Pos)
		require.True(t, ok)
		assert.False(t, snake.Occupies(berry.Pos))
		assert.NotEqual(t, apple.Pos, berry.Pos)
	}
}

func TestGenerateAppleFullGrid(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), NewCollisionManager(grid))

	snake := entity.NewSnake(types.Point{X: 1, Y: 1})
	snake.Body = grid.Cells()

	_, ok := fm.GenerateApple(snake)
	assert.False(t, ok)

	snake.Body = grid.Cells()[1:]
	apple, ok := fm.GenerateApple(snake)
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 1, Y: 1}, apple.Pos)

	_, ok = fm.GenerateBerry(snake, apple.Pos)
	assert.False(t, ok)
}

func TestGoldenAndBerryRates(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(42)), NewCollisionManager(grid))
	snake := entity.NewSnake(types.Point{X: 1, Y: 1})

	const n = 20000
	golden, berries := 0, 0
	for i := 0; i < n; i++ {
		apple, _ := fm.GenerateApple(snake)
		if apple.Kind == entity.GoldenApple {
			golden++
		}
		if fm.RollBerry() {
			berries++
		}
	}
	assert.InDelta(t, 0.10, float64(golden)/n, 0.02)
	assert.InDelta(t, 0.45, float64(berries)/n, 0.02)
}

func TestFreeCells(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 2, Y: 2})

	free := cm.FreeCells(snake, types.Point{X: 3, Y: 3})
	assert.Len(t, free, 98)
	assert.NotContains(t, free, types.Point{X: 2, Y: 2})
	assert.NotContains(t, free, types.Point{X: 3, Y: 3})
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 3}, snake))
}
