package game

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Handle identifies a session started by a Manager.
type Handle string

// Manager owns the sessions of one player. Starting a game stops the one that
// was started before it, so two game loops never drive the same screen.
type Manager struct {
	mu       sync.Mutex
	sessions map[Handle]*Session
	current  Handle
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[Handle]*Session),
	}
}

// Start stops the current session, if any, and starts a new one.
func (m *Manager) Start(cfg Config) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.sessions[m.current]; ok {
		prev.Stop()
		delete(m.sessions, m.current)
	}

	s, err := StartSession(cfg)
	if err != nil {
		return "", err
	}
	h := Handle(s.ID)
	m.sessions[h] = s
	m.current = h
	return h, nil
}

// Stop halts the session behind h. It reports false for unknown handles.
func (m *Manager) Stop(h Handle) bool {
	m.mu.Lock()
	s, ok := m.sessions[h]
	delete(m.sessions, h)
	if m.current == h {
		m.current = ""
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.Stop()
	return true
}

// Session looks up a running session.
func (m *Manager) Session(h Handle) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[h]
	return s, ok
}

// Current returns the most recently started session that is still registered.
func (m *Manager) Current() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[m.current]
	return s, ok
}

// StopAll halts every session.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[Handle]*Session)
	m.current = ""
	m.mu.Unlock()

	for h, s := range sessions {
		s.Stop()
		log.WithField("session", string(h)).Debug("session released")
	}
}
