package ws

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Session is one connected client as the hub and relay see it. Keeping it an
// interface means nothing above this package touches a real socket.
type Session interface {
	ID() string
	Send(payload []byte) error
	Close() error
}

var errSessionClosed = errors.New("session closed")

// socketSession wraps a websocket connection with a buffered send channel.
// Send never blocks on a slow peer: a full buffer counts as a failed
// delivery and the hub drops the session.
type socketSession struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

// NewSession wraps conn. The caller must run WritePump in its own goroutine.
func NewSession(conn *websocket.Conn) *socketSession {
	return &socketSession{
		id:     uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, 256),
		closed: make(chan struct{}),
	}
}

func (s *socketSession) ID() string { return s.id }

func (s *socketSession) Send(payload []byte) error {
	select {
	case <-s.closed:
		return errSessionClosed
	default:
	}
	select {
	case s.send <- payload:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (s *socketSession) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
	return nil
}

// WritePump drains the send channel to the socket until the session closes
// or a write fails. Runs as the single writer for the connection.
func (s *socketSession) WritePump() {
	defer s.Close()
	for {
		select {
		case <-s.closed:
			return
		case msg := <-s.send:
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}
