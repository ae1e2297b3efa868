package relay

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"lanchat/internal/ws"
)

type fakeAppender struct {
	next     int64
	appended []string
	fail     bool
}

func (f *fakeAppender) Append(_ context.Context, content string) (int64, error) {
	if f.fail {
		return 0, errors.New("disk full")
	}
	f.next++
	f.appended = append(f.appended, content)
	return f.next, nil
}

type fakeBroadcaster struct {
	payloads [][]byte
	excludes []ws.Session
}

func (f *fakeBroadcaster) Broadcast(payload []byte, exclude ws.Session) {
	f.payloads = append(f.payloads, payload)
	f.excludes = append(f.excludes, exclude)
}

type fakeSession struct{ id string }

func (f *fakeSession) ID() string        { return f.id }
func (f *fakeSession) Send([]byte) error { return nil }
func (f *fakeSession) Close() error      { return nil }

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func Test_Persist_Then_Broadcast(t *testing.T) {
	req := require.New(t)
	store := &fakeAppender{}
	hub := &fakeBroadcaster{}
	r := New(store, hub, quietLog())

	r.HandleIncoming(context.Background(), "hello", &fakeSession{id: "a"})

	req.Equal([]string{"hello"}, store.appended)
	req.Len(hub.payloads, 1)
	req.Equal("hello", string(hub.payloads[0]))
	// the sender is not excluded: it sees its own message via the channel
	req.Nil(hub.excludes[0])
}

func Test_Storage_Failure_Drops_Message(t *testing.T) {
	req := require.New(t)
	store := &fakeAppender{fail: true}
	hub := &fakeBroadcaster{}
	r := New(store, hub, quietLog())

	r.HandleIncoming(context.Background(), "doomed", &fakeSession{id: "a"})

	req.Empty(store.appended)
	req.Empty(hub.payloads)
}

func Test_Broadcast_Order_Matches_Persist_Order(t *testing.T) {
	req := require.New(t)
	store := &fakeAppender{}
	hub := &fakeBroadcaster{}
	r := New(store, hub, quietLog())
	sender := &fakeSession{id: "a"}

	for _, c := range []string{"one", "two", "three"} {
		r.HandleIncoming(context.Background(), c, sender)
	}

	req.Equal([]string{"one", "two", "three"}, store.appended)
	req.Len(hub.payloads, 3)
	for i, want := range []string{"one", "two", "three"} {
		req.Equal(want, string(hub.payloads[i]))
	}
}
