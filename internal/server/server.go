package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"bulwark/internal/game"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow connections from any origin
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server handles HTTP and WebSocket connections. Every connection gets its
// own simulation; sessions only share the best-score store.
type Server struct {
	store     game.ScoreStore
	staticDir string

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewServer creates a new server instance. An empty staticDir disables the
// file server.
func NewServer(store game.ScoreStore, staticDir string) *Server {
	return &Server{
		store:     store,
		staticDir: staticDir,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start starts the server on the specified address
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// SessionCount returns the number of open sessions
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	sim := game.NewSimulation(game.Config{Store: s.store})
	session := newSession(conn, sim)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	log.Printf("Session %s connected", session.ID)

	session.sendWelcomeMessage()

	go session.run()
	go s.handleSessionReads(session)
	go s.handleSessionWrites(session)
}

func (s *Server) removeSession(session *Session) {
	session.close()

	s.mu.Lock()
	delete(s.sessions, session.ID)
	s.mu.Unlock()
	log.Printf("Session %s disconnected", session.ID)
}

// handleSessionReads reads input messages from the client
func (s *Server) handleSessionReads(session *Session) {
	defer func() {
		session.Conn.Close()
		s.removeSession(session)
	}()

	// Set read deadline and pong handler for keepalive
	session.Conn.SetReadDeadline(time.Now().Add(pongWait))
	session.Conn.SetPongHandler(func(string) error {
		session.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, messageBytes, err := session.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var input InputMsg
		if err := msgpack.Unmarshal(messageBytes, &input); err != nil {
			log.Printf("Error unmarshaling input: %v", err)
			continue
		}
		if input.Type != "" && input.Type != MsgTypeInput {
			continue
		}

		session.applyInput(input)
	}
}

// handleSessionWrites sends queued messages to the client
func (s *Server) handleSessionWrites(session *Session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		session.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-session.Send:
			session.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				session.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := session.Conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				log.Printf("Write error: %v", err)
				session.close()
				return
			}

		case <-ticker.C:
			session.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := session.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				session.close()
				return
			}
		}
	}
}
