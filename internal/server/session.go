package server

import (
	"log"
	"sync"
	"time"

	"bulwark/internal/game"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const sendBufferSize = 256

// Session is one connected player driving a private simulation. Only the tick
// goroutine touches the simulation; the read pump hands input over through
// the latch.
type Session struct {
	ID   uuid.UUID
	Conn *websocket.Conn
	Send chan []byte

	sim *game.Simulation

	mu      sync.Mutex
	pending game.Input
	width   float64
	height  float64

	done      chan struct{}
	closeOnce sync.Once
}

// newSession creates a session around sim and starts its run
func newSession(conn *websocket.Conn, sim *game.Simulation) *Session {
	sim.Start()
	return &Session{
		ID:   uuid.New(),
		Conn: conn,
		Send: make(chan []byte, sendBufferSize),
		sim:  sim,
		done: make(chan struct{}),
	}
}

// applyInput latches a client message until the next tick. Continuous controls
// are replaced; one-shot actions stay set until consumed.
func (session *Session) applyInput(msg InputMsg) {
	session.mu.Lock()
	defer session.mu.Unlock()

	in := msg.toInput()
	p := &session.pending
	p.Move = in.Move
	p.Aim = in.Aim
	p.Firing = in.Firing
	p.DropMine = p.DropMine || in.DropMine
	p.PlaceTurret = p.PlaceTurret || in.PlaceTurret
	p.TogglePause = p.TogglePause || in.TogglePause
	p.Restart = p.Restart || in.Restart
	if in.UpgradeChoice != "" {
		p.UpgradeChoice = in.UpgradeChoice
	}

	if msg.Width > 0 && msg.Height > 0 {
		session.width = msg.Width
		session.height = msg.Height
	}
}

// takeInput returns the latched input and clears its one-shot actions
func (session *Session) takeInput() (in game.Input, width, height float64) {
	session.mu.Lock()
	defer session.mu.Unlock()

	in = session.pending
	width, height = session.width, session.height

	session.pending.DropMine = false
	session.pending.PlaceTurret = false
	session.pending.TogglePause = false
	session.pending.Restart = false
	session.pending.UpgradeChoice = ""
	session.width, session.height = 0, 0
	return in, width, height
}

// run steps the simulation at the tick rate until the session closes. It owns
// the Send channel and closes it on exit.
func (session *Session) run() {
	ticker := time.NewTicker(time.Second / game.TickRate)
	defer func() {
		ticker.Stop()
		close(session.Send)
	}()

	for {
		select {
		case <-session.done:
			return
		case <-ticker.C:
			session.tick()
		}
	}
}

// tick advances the simulation one frame and queues the resulting messages
func (session *Session) tick() {
	in, width, height := session.takeInput()
	if width > 0 && height > 0 {
		session.sim.Resize(width, height)
	}

	session.sim.Step(in)

	snap := session.sim.Snapshot()
	session.queue(SnapshotMsg{
		Type:    MsgTypeSnapshot,
		Session: session.ID.String(),
		Tick:    snap.Run.Tick,
		State:   snap,
	})
	for _, ev := range session.sim.DrainEvents() {
		session.queue(EventMsg{
			Type:    MsgTypeEvent,
			Session: session.ID.String(),
			Event:   ev,
		})
	}
}

func (session *Session) sendWelcomeMessage() {
	session.queue(WelcomeMsg{
		Type:      MsgTypeWelcome,
		Session:   session.ID.String(),
		TickRate:  game.TickRate,
		BestScore: session.sim.Run().BestScore,
		Catalog:   game.Catalog(),
	})
}

// queue encodes msg and hands it to the write pump without blocking
func (session *Session) queue(msg any) {
	data, err := msgpack.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message for session %s: %v", session.ID, err)
		return
	}

	select {
	case session.Send <- data:
	default:
		// Channel full, drop the frame
	}
}

// close stops the tick loop; safe to call more than once
func (session *Session) close() {
	session.closeOnce.Do(func() {
		close(session.done)
	})
}
