package game

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"berry-snake/game/entity"
	"berry-snake/game/manager"
	"berry-snake/game/types"
)

// ErrInvalidDimension is returned when a game is built on a grid outside the 10-30 range.
// Callers are expected to clamp with types.ClampDimension first.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Phase is the externally visible state of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// OverReason tells why a game ended.
type OverReason int

const (
	NotOver OverReason = iota
	SelfCollision
	BoardFull
)

func (r OverReason) String() string {
	switch r {
	case SelfCollision:
		return "self-collision"
	case BoardFull:
		return "board-full"
	default:
		return "none"
	}
}

// Outcome summarizes what a single movement tick did.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeMoved
	OutcomeApple
	OutcomeGoldenApple
	OutcomeBerry
	OutcomeGameOver
)

// TickResult is the settled state after a movement tick.
type TickResult struct {
	Outcome  Outcome
	Snapshot Snapshot
}

type options struct {
	rng   types.RNG
	store manager.HighscoreStore
	now   func() time.Time
}

type Option func(*options)

// WithRNG injects the random source used for spawn positions and rolls.
func WithRNG(rng types.RNG) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithStore sets where the highscore is read from and written to.
func WithStore(store manager.HighscoreStore) Option {
	return func(o *options) { o.store = store }
}

// WithClock replaces time.Now for berry frame accounting.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// GameState owns one game: the grid, the snake, the pickups and the score.
// It is not safe for concurrent use; a Session serializes access to it.
type GameState struct {
	Grid types.Grid

	snake      *entity.Snake
	apple      entity.Apple
	hasApple   bool
	berry      *entity.Berry
	berryTimer manager.BerryTimer

	running bool
	over    bool
	reason  OverReason

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	now          func() time.Time
}

// New builds a game on a width x height grid with a single segment snake on a
// random cell, no direction and one apple.
func New(width, height int, opts ...Option) (*GameState, error) {
	grid := types.Grid{Width: width, Height: height}
	if !grid.Valid() {
		return nil, errors.Wrapf(ErrInvalidDimension, "grid %dx%d outside [%d,%d]",
			width, height, types.MinGridSize, types.MaxGridSize)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	collisionMgr := manager.NewCollisionManager(grid)
	g := &GameState{
		Grid:         grid,
		snake:        entity.NewSnake(grid.RandomCell(o.rng)),
		running:      true,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, o.rng, collisionMgr),
		stateMgr:     manager.NewStateManager(o.store),
		now:          o.now,
	}
	g.spawnApple()

	return g, nil
}

// Phase derives the state machine position from the flags.
func (g *GameState) Phase() Phase {
	switch {
	case g.over:
		return PhaseOver
	case !g.running:
		return PhasePaused
	case g.snake.Direction.IsZero():
		return PhaseIdle
	default:
		return PhaseRunning
	}
}

// SetDirection steers the snake. Reversals, non-unit vectors and input after
// the game ended are ignored and reported as false.
func (g *GameState) SetDirection(dx, dy int) bool {
	if g.over {
		return false
	}
	return g.snake.SetDirection(types.Direction{DX: dx, DY: dy})
}

// TogglePause flips the running flag. It has no effect once the game is over.
func (g *GameState) TogglePause() {
	if g.over {
		return
	}
	g.running = !g.running
}

// AdvanceTick moves the snake one cell and resolves what it ran into.
func (g *GameState) AdvanceTick() TickResult {
	if g.Phase() != PhaseRunning {
		return TickResult{Outcome: OutcomeSkipped, Snapshot: g.Snapshot()}
	}

	newHead := g.Grid.Step(g.snake.GetHead(), g.snake.Direction)

	if g.collisionMgr.IsSelfCollision(newHead, g.snake) {
		g.gameOver(SelfCollision)
		return TickResult{Outcome: OutcomeGameOver, Snapshot: g.Snapshot()}
	}

	g.snake.Move(newHead)

	outcome := OutcomeMoved
	switch {
	case g.hasApple && g.collisionMgr.IsFoodCollision(newHead, g.apple.Pos):
		gain := g.apple.Kind.Gain()
		outcome = OutcomeApple
		if g.apple.Kind == entity.GoldenApple {
			outcome = OutcomeGoldenApple
		}
		g.snake.Grow(gain)
		g.stateMgr.AddScore(gain)
		if !g.spawnApple() {
			g.snake.Trim()
			g.gameOver(BoardFull)
			return TickResult{Outcome: OutcomeGameOver, Snapshot: g.Snapshot()}
		}
	case g.berry != nil && g.collisionMgr.IsFoodCollision(newHead, g.berry.Pos):
		outcome = OutcomeBerry
		g.snake.Shrink(types.BerryPenalty)
		g.stateMgr.Penalize(types.BerryPenalty)
		g.clearBerry()
	}

	g.snake.Trim()

	return TickResult{Outcome: outcome, Snapshot: g.Snapshot()}
}

// AdvanceBerryCountdown shortens the berry lifetime by delta and removes the
// berry once it runs out. The countdown runs whenever the game is not paused or
// over, also before the first direction is chosen.
func (g *GameState) AdvanceBerryCountdown(delta time.Duration) {
	if g.berry == nil || !g.berryDecays() {
		return
	}
	if g.berryTimer.Tick(delta) {
		g.clearBerry()
	}
}

// BerryFrame feeds an animation frame timestamp to the berry countdown. Frames
// that arrive while the game is not running only move the reference timestamp.
func (g *GameState) BerryFrame(now time.Time) {
	if g.berry == nil {
		return
	}
	if g.berryTimer.Frame(now, g.berryDecays()) {
		g.clearBerry()
	}
}

func (g *GameState) berryDecays() bool {
	return g.running && !g.over
}

// spawnApple places a new apple and rolls for a berry. It reports false when
// no free cell is left.
func (g *GameState) spawnApple() bool {
	apple, ok := g.foodMgr.GenerateApple(g.snake)
	if !ok {
		g.hasApple = false
		g.clearBerry()
		return false
	}
	g.apple = apple
	g.hasApple = true

	if g.foodMgr.RollBerry() {
		g.spawnBerry()
	} else {
		g.clearBerry()
	}
	return true
}

func (g *GameState) spawnBerry() {
	berry, ok := g.foodMgr.GenerateBerry(g.snake, g.apple.Pos)
	if !ok {
		g.clearBerry()
		return
	}
	g.berry = &berry
	g.berryTimer.Reset(types.BerryLifetime, g.now())
}

func (g *GameState) clearBerry() {
	g.berry = nil
	g.berryTimer.Clear()
}

func (g *GameState) gameOver(reason OverReason) {
	g.over = true
	g.running = false
	g.reason = reason
	g.clearBerry()
}
