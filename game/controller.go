package game

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Controller binds player actions to the sessions of a Manager. Restarting
// replaces the running session with a fresh one built from the same Config.
type Controller struct {
	cfg Config
	mgr *Manager

	mu      sync.Mutex
	session *Session
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, mgr: NewManager()}
}

// Start begins a new game, stopping the previous one.
func (c *Controller) Start() (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.mgr.Start(c.cfg)
	if err != nil {
		return nil, errors.Wrap(err, "start session")
	}
	s, _ := c.mgr.Session(h)
	c.session = s
	return s, nil
}

// Session is the game currently driven by the controller, or nil before Start.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Apply executes a. It reports true when the player asked to quit.
func (c *Controller) Apply(a Action) (bool, error) {
	switch a.Kind {
	case ActionQuit:
		return true, nil
	case ActionRestart:
		s, err := c.Start()
		if err == nil {
			log.WithField("session", s.ID).Debug("restarted")
		}
		return false, err
	}

	s := c.Session()
	if s == nil {
		return false, nil
	}
	switch a.Kind {
	case ActionSteer:
		s.Steer(a.Dir)
	case ActionPause:
		s.TogglePause()
	}
	return false, nil
}

// Close stops every session the controller started.
func (c *Controller) Close() {
	c.mgr.StopAll()
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}
