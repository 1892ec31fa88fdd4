package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berry-snake/game/types"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.TickInterval = time.Hour
	cfg.FrameInterval = time.Hour
	cfg.Seed = 3
	cfg.Store = &memStore{}
	return cfg
}

func TestStartSessionRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Width = 40

	s, err := StartSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestSessionDebouncesSteering(t *testing.T) {
	s, err := StartSession(quietConfig())
	require.NoError(t, err)
	defer s.Stop()

	s.Steer(types.Right)
	s.Steer(types.Down)
	s.Steer(types.Up)

	assert.Equal(t, types.Right, s.Snapshot().Direction)
}

func TestSessionDropsInputWhilePaused(t *testing.T) {
	s, err := StartSession(quietConfig())
	require.NoError(t, err)
	defer s.Stop()

	s.TogglePause()
	s.Steer(types.Right)
	snap := s.Snapshot()
	assert.Equal(t, types.None, snap.Direction)
	assert.Equal(t, PhasePaused, snap.Phase)

	s.TogglePause()
	s.Steer(types.Right)
	assert.Equal(t, PhaseRunning, s.Snapshot().Phase)
}

func TestSessionTicksMoveSnake(t *testing.T) {
	cfg := quietConfig()
	cfg.TickInterval = 5 * time.Millisecond
	cfg.FrameInterval = 2 * time.Millisecond

	s, err := StartSession(cfg)
	require.NoError(t, err)
	defer s.Stop()

	updates, unsubscribe := s.Subscribe()
	defer unsubscribe()

	start := s.Snapshot().Head()
	s.Steer(types.Down)

	assert.Eventually(t, func() bool {
		snap := s.Snapshot()
		return snap.Over || snap.Head() != start
	}, time.Second, 5*time.Millisecond)

	select {
	case u := <-updates:
		assert.Equal(t, 10, u.Snapshot.Width)
	case <-time.After(time.Second):
		t.Fatal("no update published")
	}
}

func TestSessionStop(t *testing.T) {
	s, err := StartSession(quietConfig())
	require.NoError(t, err)

	s.Steer(types.Left)
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("session loop still running")
	}

	s.Steer(types.Up)
	assert.Equal(t, types.Left, s.Snapshot().Direction)
}

func TestManagerStartReplacesPrevious(t *testing.T) {
	m := NewManager()
	defer m.StopAll()

	h1, err := m.Start(quietConfig())
	require.NoError(t, err)
	s1, ok := m.Session(h1)
	require.True(t, ok)

	h2, err := m.Start(quietConfig())
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	select {
	case <-s1.Done():
	case <-time.After(time.Second):
		t.Fatal("previous session still running")
	}

	_, ok = m.Session(h1)
	assert.False(t, ok)
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, string(h2), cur.ID)
}

func TestManagerStop(t *testing.T) {
	m := NewManager()

	h, err := m.Start(quietConfig())
	require.NoError(t, err)

	assert.True(t, m.Stop(h))
	assert.False(t, m.Stop(h))
	assert.False(t, m.Stop(Handle("missing")))
	_, ok := m.Current()
	assert.False(t, ok)

	_, err = m.Start(Config{Width: 5, Height: 5})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
