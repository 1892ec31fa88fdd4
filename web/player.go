package web

import (
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"berry-snake/game"
)

// player is one websocket connection. readLoop runs on the handler goroutine
// and is the only reader, writeLoop is the only writer.
type player struct {
	conn   *websocket.Conn
	ctl    *game.Controller
	closed chan struct{}
}

func (p *player) readLoop(logger *log.Entry) {
	for {
		var msg clientMessage
		if err := p.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Warn("read failed")
			}
			return
		}
		a, ok := msg.action()
		if !ok {
			logger.WithField("type", msg.Type).Debug("unknown message")
			continue
		}
		if _, err := p.ctl.Apply(a); err != nil {
			logger.WithError(err).Error("action failed")
		}
	}
}

// writeLoop forwards updates of the current session and follows restarts.
func (p *player) writeLoop() {
	session := p.ctl.Session()
	for session != nil {
		updates, cancel := session.Subscribe()
		if err := p.write(game.Update{Snapshot: session.Snapshot()}); err != nil {
			cancel()
			return
		}
		session = p.forward(session, updates)
		cancel()
	}
}

// forward returns the session that replaced s, or nil when the player is gone.
func (p *player) forward(s *game.Session, updates <-chan game.Update) *game.Session {
	for {
		select {
		case u := <-updates:
			if err := p.write(u); err != nil {
				return nil
			}
		case <-s.Done():
			if next := p.ctl.Session(); next != s {
				return next
			}
			return nil
		case <-p.closed:
			return nil
		}
	}
}

func (p *player) write(u game.Update) error {
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteJSON(newStateMessage(u))
}
