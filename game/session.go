package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"berry-snake/game/manager"
	"berry-snake/game/types"
)

// Config describes one game session.
type Config struct {
	Width  int
	Height int

	TickInterval  time.Duration
	FrameInterval time.Duration

	// Seed drives spawn positions; zero picks a time based seed.
	Seed  uint64
	Store manager.HighscoreStore
}

func DefaultConfig() Config {
	return Config{
		Width:         20,
		Height:        20,
		TickInterval:  types.TickInterval,
		FrameInterval: types.FrameInterval,
	}
}

// Update is published to subscribers whenever the settled state changes.
type Update struct {
	Outcome  Outcome
	Snapshot Snapshot
}

type commandKind int

const (
	cmdSteer commandKind = iota
	cmdPause
	cmdSnapshot
)

type command struct {
	kind  commandKind
	dir   types.Direction
	reply chan Snapshot
}

// Session runs one GameState on its own goroutine. Movement ticks, berry
// frames and player input all pass through that goroutine, so every update a
// subscriber sees is fully settled.
type Session struct {
	ID  string
	cfg Config

	state    *GameState
	commands chan command
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu          sync.Mutex
	subscribers map[int]chan Update
	nextSub     int

	// steered is set once a direction change was applied in the current tick.
	steered  bool
	hadBerry bool
}

// StartSession builds the game described by cfg and starts its loop.
func StartSession(cfg Config) (*Session, error) {
	def := DefaultConfig()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = def.FrameInterval
	}

	opts := []Option{WithStore(cfg.Store)}
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	state, err := New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:          uuid.New().String(),
		cfg:         cfg,
		state:       state,
		commands:    make(chan command),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		subscribers: make(map[int]chan Update),
	}
	s.hadBerry = state.berry != nil

	log.WithFields(log.Fields{
		"session": s.ID,
		"width":   cfg.Width,
		"height":  cfg.Height,
	}).Info("session started")

	go s.loop()
	return s, nil
}

// Subscribe returns a channel carrying the latest update. Slow readers only
// miss intermediate frames. The returned func unsubscribes.
func (s *Session) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Steer requests a direction change. Input is dropped while paused and only the
// first change within a movement tick is applied.
func (s *Session) Steer(dir types.Direction) {
	s.send(command{kind: cmdSteer, dir: dir})
}

func (s *Session) TogglePause() {
	s.send(command{kind: cmdPause})
}

// Snapshot returns the current state. After Stop it returns the final state.
func (s *Session) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	if !s.send(command{kind: cmdSnapshot, reply: reply}) {
		return s.state.Snapshot()
	}
	return <-reply
}

// Stop halts both timers. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

// Done is closed once the session loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) send(cmd command) bool {
	select {
	case s.commands <- cmd:
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) loop() {
	defer close(s.done)

	tick := time.NewTicker(s.cfg.TickInterval)
	defer tick.Stop()
	frame := time.NewTicker(s.cfg.FrameInterval)
	defer frame.Stop()

	for {
		select {
		case <-s.stop:
			log.WithField("session", s.ID).Debug("session stopped")
			return

		case <-tick.C:
			s.steered = false
			res := s.state.AdvanceTick()
			s.publish(Update(res))
			if res.Outcome == OutcomeGameOver {
				log.WithFields(log.Fields{
					"session": s.ID,
					"score":   res.Snapshot.Score,
					"reason":  res.Snapshot.Reason,
				}).Info("game over")
			}

		case now := <-frame.C:
			s.state.BerryFrame(now)
			hasBerry := s.state.berry != nil
			if hasBerry || s.hadBerry {
				s.publish(Update{Outcome: OutcomeSkipped, Snapshot: s.state.Snapshot()})
			}
			s.hadBerry = hasBerry

		case cmd := <-s.commands:
			s.handle(cmd)
		}
	}
}

func (s *Session) handle(cmd command) {
	switch cmd.kind {
	case cmdSteer:
		if s.steered || s.state.Phase() == PhasePaused {
			return
		}
		before := s.state.Direction()
		if s.state.SetDirection(cmd.dir.DX, cmd.dir.DY) && s.state.Direction() != before {
			s.steered = true
			s.publish(Update{Outcome: OutcomeSkipped, Snapshot: s.state.Snapshot()})
		}
	case cmdPause:
		s.state.TogglePause()
		s.publish(Update{Outcome: OutcomeSkipped, Snapshot: s.state.Snapshot()})
	case cmdSnapshot:
		cmd.reply <- s.state.Snapshot()
	}
}

func (s *Session) publish(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- u:
		default:
			// drop the stale update and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- u:
			default:
			}
		}
	}
}
