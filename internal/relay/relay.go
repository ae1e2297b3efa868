package relay

import (
	"context"

	"github.com/sirupsen/logrus"

	"lanchat/internal/ws"
)

// MessageAppender is the slice of the message store the relay needs.
type MessageAppender interface {
	Append(ctx context.Context, content string) (int64, error)
}

// Broadcaster is the slice of the hub the relay needs.
type Broadcaster interface {
	Broadcast(payload []byte, exclude ws.Session)
}

// Relay is the single state-changing path of the system: persist one inbound
// message, then fan it out. It holds no state between calls.
type Relay struct {
	store MessageAppender
	hub   Broadcaster
	log   *logrus.Logger
}

func New(store MessageAppender, hub Broadcaster, log *logrus.Logger) *Relay {
	return &Relay{store: store, hub: hub, log: log}
}

// HandleIncoming makes content durable and visible to every connected
// client, the sender included, so clients never need to echo locally.
// If the append fails the message is dropped: nothing is broadcast and the
// sender gets no error event back.
func (r *Relay) HandleIncoming(ctx context.Context, content string, sender ws.Session) {
	id, err := r.store.Append(ctx, content)
	if err != nil {
		r.log.WithError(err).Error("message not persisted, dropping")
		return
	}
	r.log.Debugf("message %d persisted, broadcasting", id)
	r.hub.Broadcast([]byte(content), nil)
}
