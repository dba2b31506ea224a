// Package remote feeds the overlay with contact events received over a
// websocket connection, so a phone or tablet can drive an overlay running
// on another machine.
package remote

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/okvist/touchdeck/control"
)

// Message is a remote input payload.
type Message struct {
	T       string `json:"t"`
	ID      int    `json:"id,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Server accepts one websocket client and translates its messages into
// contact events. The sink and edit callbacks run on the connection's
// goroutine; hosts that process events on a game loop should forward them
// through a channel.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	conn     *websocket.Conn

	sink   func(control.TouchEvent)
	onEdit func(enabled bool)
	now    func() time.Time
}

// NewServer creates a remote input server delivering contact events to sink
// and edit-mode toggles to onEdit (which may be nil).
func NewServer(sink func(control.TouchEvent), onEdit func(bool)) *Server {
	return &Server{
		sink:   sink,
		onEdit: onEdit,
		now:    time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// SetNowFunc overrides the clock used for event timestamps.
func (s *Server) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// ServeHTTP upgrades the connection and processes input messages until the
// client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handleMessage(msg)
	}
}

// acceptConn ensures only one active input connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("remote input connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

func (s *Server) handleMessage(msg Message) {
	switch msg.T {
	case "down":
		s.emit(control.Touch, msg)
	case "move":
		s.emit(control.Move, msg)
	case "up":
		s.emit(control.Release, msg)
	case "edit":
		if s.onEdit != nil && msg.Enabled != nil {
			s.onEdit(*msg.Enabled)
		}
	}
}

func (s *Server) emit(t control.EventType, msg Message) {
	if s.sink == nil {
		return
	}
	s.sink(control.TouchEvent{
		Type:      t,
		Contact:   control.ContactID(msg.ID),
		X:         msg.X,
		Y:         msg.Y,
		Timestamp: s.now().UnixNano(),
	})
}
