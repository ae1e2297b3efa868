package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"lanchat/internal/ws"
)

// Sender is the inbound half of the relay as this handler needs it.
type Sender interface {
	HandleIncoming(ctx context.Context, content string, sender ws.Session)
}

var upgrader = websocket.Upgrader{
	// Everyone on the LAN is trusted; the join QR is the only gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	Hub   *ws.Hub
	Relay Sender
	Log   *logrus.Logger
}

// ServeHTTP upgrades the request and runs the connection's read loop.
// Each inbound text frame is one send_message event; each frame the write
// pump delivers is one receive_message event. There is no other protocol.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	session := ws.NewSession(conn)
	h.Hub.Register(session)
	go session.WritePump()

	defer h.Hub.Unregister(session)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			// client disconnected or errored; the deferred unregister
			// removes it from the broadcast set
			return
		}
		h.Relay.HandleIncoming(r.Context(), string(msg), session)
	}
}
