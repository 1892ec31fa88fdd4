package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"berry-snake/game"
	"berry-snake/game/manager"
	"berry-snake/game/types"
)

const (
	URIPlay      = "/play"
	URIHighscore = "/highscore"
	URIHealth    = "/healthz"

	writeWait = 2 * time.Second
)

// Server serves one game per websocket connection. All games share the
// highscore store.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	store    manager.HighscoreStore
	defaults game.Config
}

func NewServer(store manager.HighscoreStore, defaults game.Config) *Server {
	s := &Server{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		store:    store,
		defaults: defaults,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIPlay, s.handlePlay)
	s.router.HandleFunc("GET", URIHighscore, s.handleHighscore)
	s.router.HandleFunc("GET", URIHealth, s.handleHealth)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleHighscore(w http.ResponseWriter, r *http.Request) {
	high, err := s.store.LoadHighscore()
	if err != nil {
		log.WithError(err).Warn("highscore unavailable")
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(highscoreResponse{Highscore: high})
}

// configFor applies the width and height query parameters to the defaults.
func (s *Server) configFor(r *http.Request) game.Config {
	cfg := s.defaults
	cfg.Store = s.store
	if v, err := strconv.Atoi(r.URL.Query().Get("width")); err == nil {
		cfg.Width = types.ClampDimension(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("height")); err == nil {
		cfg.Height = types.ClampDimension(v)
	}
	return cfg
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	cfg := s.configFor(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := log.WithField("remote", r.RemoteAddr)
	ctl := game.NewController(cfg)
	if _, err := ctl.Start(); err != nil {
		logger.WithError(err).Error("could not start game")
		conn.WriteJSON(errorMessage{Type: msgError, Message: err.Error()})
		return
	}
	logger.Info("player connected")

	p := &player{conn: conn, ctl: ctl, closed: make(chan struct{})}
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		p.writeLoop()
	}()

	p.readLoop(logger)

	close(p.closed)
	ctl.Close()
	<-writerDone
	logger.Info("player disconnected")
}
