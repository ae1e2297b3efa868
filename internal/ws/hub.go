package ws

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub tracks the live set of sessions and fans payloads out to them.
// It is the only holder of session references outside an in-flight
// broadcast.
type Hub struct {
	log *logrus.Logger

	mu       sync.Mutex
	sessions map[string]Session
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:      log,
		sessions: make(map[string]Session),
	}
}

// Register adds s to the live set. No-op if already registered.
func (h *Hub) Register(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s.ID()]; ok {
		return
	}
	h.sessions[s.ID()] = s
	h.log.Infof("client connected: %s (%d online)", s.ID(), len(h.sessions))
}

// Unregister removes s from the live set and closes it. No-op if not present.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	_, ok := h.sessions[s.ID()]
	if ok {
		delete(h.sessions, s.ID())
	}
	n := len(h.sessions)
	h.mu.Unlock()

	if ok {
		s.Close()
		h.log.Infof("client disconnected: %s (%d online)", s.ID(), n)
	}
}

// Broadcast delivers payload to every registered session except exclude (if
// non-nil). Delivery is best-effort per session: a failure is logged, the
// dead session is unregistered, and the rest still receive the payload.
// The recipient set is a snapshot taken when the call begins.
func (h *Hub) Broadcast(payload []byte, exclude Session) {
	h.mu.Lock()
	targets := make([]Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		if exclude != nil && s.ID() == exclude.ID() {
			continue
		}
		targets = append(targets, s)
	}
	h.mu.Unlock()

	for _, s := range targets {
		if err := s.Send(payload); err != nil {
			h.log.WithError(err).Debugf("dropping client %s", s.ID())
			h.Unregister(s)
		}
	}
}

// Len reports how many sessions are currently registered.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
