package socket

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kleeedolinux/central.go/config"
)

// fakeRemote plays the remote side of every transport it hands out.
type fakeRemote struct {
	mu         sync.Mutex
	dials      int
	handshakes []Handshake
	calls      []Message
	conns      []*fakeConn

	ack      bool
	ackDelay time.Duration
	reject   string
	replies  map[Event]func(data json.RawMessage) any
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		ack:     true,
		replies: make(map[Event]func(data json.RawMessage) any),
	}
}

func (r *fakeRemote) factory(url string, timeout time.Duration) Transport {
	conn := &fakeConn{
		remote: r,
		in:     make(chan []byte, 64),
		closed: make(chan struct{}),
	}

	r.mu.Lock()
	r.conns = append(r.conns, conn)
	r.mu.Unlock()

	return conn
}

func (r *fakeRemote) reply(event Event, fn func(data json.RawMessage) any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replies[event] = fn
}

func (r *fakeRemote) dialCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dials
}

func (r *fakeRemote) lastHandshake(t *testing.T) Handshake {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.handshakes)
	return r.handshakes[len(r.handshakes)-1]
}

func (r *fakeRemote) latest(t *testing.T) *fakeConn {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.conns)
	return r.conns[len(r.conns)-1]
}

// push sends an event without id on the most recent connection.
func (r *fakeRemote) push(t *testing.T, event Event, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	r.latest(t).deliver(Message{Type: MessageEvent, Event: event, Data: raw})
}

type fakeConn struct {
	remote *fakeRemote
	in     chan []byte
	closed chan struct{}
	once   sync.Once
}

func (f *fakeConn) Connect(ctx context.Context) error {
	f.remote.mu.Lock()
	defer f.remote.mu.Unlock()

	f.remote.dials++
	return nil
}

func (f *fakeConn) Send(data []byte) error {
	select {
	case <-f.closed:
		return io.ErrClosedPipe
	default:
	}

	msg, err := decodeMessage(data)
	if err != nil {
		return err
	}

	r := f.remote
	switch msg.Type {
	case MessageConnect:
		var hs Handshake
		_ = json.Unmarshal(msg.Data, &hs)

		r.mu.Lock()
		r.handshakes = append(r.handshakes, hs)
		ack, delay, reject := r.ack, r.ackDelay, r.reject
		r.mu.Unlock()

		switch {
		case reject != "":
			raw, _ := json.Marshal(ConnectError{Message: reject})
			f.deliver(Message{Type: MessageConnectError, Data: raw})
		case ack && delay > 0:
			time.AfterFunc(delay, func() { f.deliver(Message{Type: MessageConnect}) })
		case ack:
			f.deliver(Message{Type: MessageConnect})
		}
	case MessageEvent:
		r.mu.Lock()
		r.calls = append(r.calls, msg)
		fn, ok := r.replies[msg.Event]
		r.mu.Unlock()

		if ok && msg.ID != "" {
			raw, _ := json.Marshal(fn(msg.Data))
			f.deliver(Message{Type: MessageAck, ID: msg.ID, Data: raw})
		}
	}
	return nil
}

func (f *fakeConn) deliver(msg Message) {
	data, _ := json.Marshal(msg)
	select {
	case <-f.closed:
	case f.in <- data:
	}
}

func (f *fakeConn) Receive() ([]byte, error) {
	select {
	case data := <-f.in:
		return data, nil
	case <-f.closed:
		return nil, io.EOF
	}
}

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func newTestClient(t *testing.T, r *fakeRemote, opts ...ClientOption) *Client {
	t.Helper()

	cfg := config.Default()
	cfg.Timeout = 500 * time.Millisecond

	c := NewClient(cfg, append([]ClientOption{WithTransport(r.factory)}, opts...)...)
	t.Cleanup(c.Disconnect)
	return c
}

func connect(t *testing.T, c *Client) {
	t.Helper()

	done := make(chan error, 1)
	c.Connect(func() { done <- nil }, func(err error) { done <- err })

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("connect did not complete")
	}
}
