package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bulwark/internal/game"
	"bulwark/internal/persistence"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func dialTestServer(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil decodes messages until one of the wanted type arrives
func readUntil(t *testing.T, conn *websocket.Conn, msgType string, out any) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.BinaryMessage, kind)

		var header struct {
			Type string `msgpack:"type"`
		}
		require.NoError(t, msgpack.Unmarshal(data, &header))
		if header.Type == msgType {
			require.NoError(t, msgpack.Unmarshal(data, out))
			return
		}
	}
}

func TestSessionWelcomeAndSnapshots(t *testing.T) {
	srv := NewServer(persistence.NewMemoryStore(900), "")
	conn := dialTestServer(t, srv)

	var welcome WelcomeMsg
	readUntil(t, conn, MsgTypeWelcome, &welcome)
	assert.NotEmpty(t, welcome.Session)
	assert.Equal(t, 900, welcome.BestScore)
	assert.Equal(t, game.TickRate, welcome.TickRate)
	assert.Len(t, welcome.Catalog, len(game.Catalog()))

	var snap SnapshotMsg
	readUntil(t, conn, MsgTypeSnapshot, &snap)
	assert.Equal(t, welcome.Session, snap.Session)
	assert.Positive(t, snap.Tick)
	assert.Equal(t, game.PhaseRunning, snap.State.Run.Phase)
	assert.Equal(t, 1, snap.State.Run.Wave)
	assert.Len(t, snap.State.Enemies, game.EnemyCount(1))
	assert.Equal(t, 1, srv.SessionCount())
}

func TestSessionPauseInput(t *testing.T) {
	srv := NewServer(nil, "")
	conn := dialTestServer(t, srv)

	var welcome WelcomeMsg
	readUntil(t, conn, MsgTypeWelcome, &welcome)

	data, err := msgpack.Marshal(InputMsg{Type: MsgTypeInput, TogglePause: true})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, data))

	for i := 0; i < 120; i++ {
		var snap SnapshotMsg
		readUntil(t, conn, MsgTypeSnapshot, &snap)
		if snap.State.Paused {
			return
		}
	}
	t.Fatal("session never paused")
}

func TestInputLatchKeepsOneShotActions(t *testing.T) {
	session := newSession(nil, game.NewSimulation(game.Config{Seed: 1}))

	session.applyInput(InputMsg{MoveX: 1, DropMine: true, Upgrade: "damage", Width: 800, Height: 600})
	session.applyInput(InputMsg{MoveX: -1, AimX: 10, AimY: 20})

	in, width, height := session.takeInput()
	assert.Equal(t, game.Vec2{X: -1}, in.Move)
	assert.Equal(t, game.Vec2{X: 10, Y: 20}, in.Aim)
	assert.True(t, in.DropMine)
	assert.Equal(t, game.UpgradeDamage, in.UpgradeChoice)
	assert.Equal(t, 800.0, width)
	assert.Equal(t, 600.0, height)

	in, width, _ = session.takeInput()
	assert.False(t, in.DropMine)
	assert.Empty(t, in.UpgradeChoice)
	assert.Equal(t, game.Vec2{X: -1}, in.Move)
	assert.Zero(t, width)
}

func TestSessionTickResizes(t *testing.T) {
	sim := game.NewSimulation(game.Config{Seed: 2})
	session := newSession(nil, sim)

	session.applyInput(InputMsg{Width: 640, Height: 480})
	session.tick()

	w, h := sim.Size()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 480.0, h)
	assert.NotEmpty(t, session.Send)
}
