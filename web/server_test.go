package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berry-snake/game"
	"berry-snake/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	cfg := game.DefaultConfig()
	cfg.TickInterval = time.Hour
	cfg.FrameInterval = time.Hour
	cfg.Seed = 5

	srv := httptest.NewServer(NewServer(storage.NewMemoryStore(7), cfg))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + URIPlay + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads state messages until one satisfies ok.
func readUntil(t *testing.T, conn *websocket.Conn, ok func(stateMessage) bool) stateMessage {
	deadline := time.Now().Add(3 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		var m stateMessage
		require.NoError(t, conn.ReadJSON(&m))
		if ok(m) {
			return m
		}
	}
}

func TestPlayInitialState(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "?width=12&height=15")

	m := readUntil(t, conn, func(stateMessage) bool { return true })
	assert.Equal(t, msgState, m.Type)
	assert.Equal(t, 12, m.Width)
	assert.Equal(t, 15, m.Height)
	assert.Equal(t, "idle", m.Phase)
	assert.Equal(t, 7, m.Highscore)
	assert.Len(t, m.Snake, 1)
	require.NotNil(t, m.Apple)
}

func TestPlayClampsSize(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "?width=3&height=99")

	m := readUntil(t, conn, func(stateMessage) bool { return true })
	assert.Equal(t, 10, m.Width)
	assert.Equal(t, 30, m.Height)
}

func TestPlayCommands(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "")
	readUntil(t, conn, func(stateMessage) bool { return true })

	require.NoError(t, conn.WriteJSON(clientMessage{Type: msgDirection, DX: -1, DY: 0}))
	readUntil(t, conn, func(m stateMessage) bool {
		return m.Direction == directionDTO{DX: -1, DY: 0}
	})

	require.NoError(t, conn.WriteJSON(clientMessage{Type: msgPause}))
	readUntil(t, conn, func(m stateMessage) bool { return m.Phase == "paused" })

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "bogus"}))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: msgRestart}))
	m := readUntil(t, conn, func(m stateMessage) bool { return m.Phase == "idle" })
	assert.Equal(t, directionDTO{}, m.Direction)
	assert.Equal(t, 0, m.Score)
}

func TestHighscoreEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + URIHighscore)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body highscoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 7, body.Highscore)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + URIHealth)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(b))
}

func TestClientMessageAction(t *testing.T) {
	a, ok := clientMessage{Type: msgDirection, DX: 0, DY: 1}.action()
	assert.True(t, ok)
	assert.Equal(t, game.ActionSteer, a.Kind)

	_, ok = clientMessage{Type: "quit"}.action()
	assert.False(t, ok)
}
