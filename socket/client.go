// Package socket implements the Central event channel: a persistent,
// reconnectable connection carrying correlated calls and pushed events.
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/config"
	"github.com/kleeedolinux/central.go/debug"
	"github.com/kleeedolinux/central.go/deferred"
	"github.com/kleeedolinux/central.go/internal/metrics"
	"github.com/kleeedolinux/central.go/socket/transport"
)

type Transport interface {
	Connect(ctx context.Context) error
	Send(data []byte) error
	Receive() ([]byte, error)
	Close() error
}

// TransportFactory builds a fresh, unconnected transport for each connect.
type TransportFactory func(url string, timeout time.Duration) Transport

type Client struct {
	mu sync.Mutex

	url          string
	timeout      time.Duration
	token        string
	locale       string
	events       Events
	newTransport TransportFactory
	wsOptions    []transport.WebSocketOption
	rejectOnDrop bool
	logger       zerolog.Logger

	state State
	conn  Transport
	gen   uint64

	registry []*subscription
	live     map[Event][]*subscription
	pending  map[string]*deferred.Deferred[json.RawMessage]

	waiters    map[uint64]func()
	nextWaiter uint64
}

type ClientOption func(*Client)

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithTransport(factory TransportFactory) ClientOption {
	return func(c *Client) {
		c.newTransport = factory
	}
}

// WithTransportOptions configures the websocket transport dialed by the
// default factory, for instance with transport.WithTLSConfig or
// transport.WithHeaders. It has no effect together with WithTransport.
func WithTransportOptions(opts ...transport.WebSocketOption) ClientOption {
	return func(c *Client) {
		c.wsOptions = append(c.wsOptions, opts...)
	}
}

// WithEvents overrides the event name table.
func WithEvents(events Events) ClientOption {
	return func(c *Client) {
		c.events = events
	}
}

// WithRejectPendingOnDisconnect makes calls still waiting for a reply fail
// with ErrDisconnected when their connection goes away. By default they are
// left to the caller's context.
func WithRejectPendingOnDisconnect(reject bool) ClientOption {
	return func(c *Client) {
		c.rejectOnDrop = reject
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(cfg config.Config, opts ...ClientOption) *Client {
	cfg = cfg.WithDefaults()

	c := &Client{
		url:          cfg.SocketURL(),
		timeout:      cfg.Timeout,
		locale:       cfg.Locale,
		events:       DefaultEvents(),
		logger:       debug.Logger("socket"),
		live:         make(map[Event][]*subscription),
		pending:      make(map[string]*deferred.Deferred[json.RawMessage]),
		waiters:      make(map[uint64]func()),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.newTransport == nil {
		c.newTransport = c.dialWebSocket
	}

	return c
}

func (c *Client) dialWebSocket(url string, timeout time.Duration) Transport {
	opts := []transport.WebSocketOption{
		transport.WithHandshakeTimeout(timeout),
		transport.WithLogger(c.logger.With().Str("layer", "transport").Logger()),
	}
	return transport.NewWebSocketTransport(url, append(opts, c.wsOptions...)...)
}

func (c *Client) URL() string {
	return c.url
}

func (c *Client) Events() Events {
	return c.events
}

// SetToken updates the credential used by the next Connect. An established
// connection keeps the token it was opened with.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

// SetLocale updates the locale sent by the next Connect.
func (c *Client) SetLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.locale = locale
}

func (c *Client) Locale() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.locale
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Client) Connected() bool {
	return c.State() == StateConnected
}

// Connect drops any current connection and opens a new one in the
// background. onConnect runs after every registered handler is bound again;
// onConnectError runs if the dial, handshake or timeout fails. There is no
// automatic retry.
//
// onConnect and event handlers run on one dispatch goroutine per connection,
// in arrival order, so they may block on Call.
func (c *Client) Connect(onConnect func(), onConnectError func(error)) {
	c.mu.Lock()
	old := c.startLocked(onConnect, onConnectError)
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// TryConnect calls Connect only while disconnected.
func (c *Client) TryConnect(onConnect func(), onConnectError func(error)) {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	old := c.startLocked(onConnect, onConnectError)
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// Disconnect closes the connection. Connected reads false once it returns.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.state == StateDisconnected {
		c.mu.Unlock()
		return
	}
	old := c.dropLocked(ErrDisconnected)
	c.gen++
	c.mu.Unlock()

	c.logger.Debug().Msg("disconnected by caller")
	if old != nil {
		old.Close()
	}
}

// WaitConnected returns once the channel is connected. A positive timeout
// bounds the wait and yields ErrTimeout.
func (c *Client) WaitConnected(ctx context.Context, timeout time.Duration) error {
	connected := deferred.New[struct{}]()

	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	id := c.nextWaiter
	c.nextWaiter++
	c.waiters[id] = func() { connected.Resolve(struct{}{}) }
	c.mu.Unlock()

	defer c.removeWaiter(id)

	if timeout > 0 {
		timer := time.AfterFunc(timeout, func() { connected.Reject(ErrTimeout) })
		defer timer.Stop()
	}

	_, err := connected.Wait(ctx)
	return err
}

func (c *Client) removeWaiter(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.waiters, id)
}

// startLocked must hold c.mu. It returns the transport being replaced.
func (c *Client) startLocked(onConnect func(), onConnectError func(error)) Transport {
	old := c.dropLocked(ErrDisconnected)

	c.gen++
	gen := c.gen
	c.state = StateConnecting

	conn := c.newTransport(c.url, c.timeout)
	c.conn = conn
	hs := Handshake{Token: c.token, Locale: c.locale}

	c.logger.Debug().Str("url", c.url).Uint64("generation", gen).Msg("connecting")
	go c.run(gen, conn, hs, onConnect, onConnectError)

	return old
}

// dropLocked must hold c.mu. It forgets the live transport and bindings and
// applies the pending-call policy.
func (c *Client) dropLocked(reason error) Transport {
	old := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.live = make(map[Event][]*subscription)

	for id, d := range c.pending {
		if c.rejectOnDrop {
			d.Reject(reason)
		}
		delete(c.pending, id)
	}
	return old
}

func (c *Client) run(gen uint64, conn Transport, hs Handshake, onConnect func(), onConnectError func(error)) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	callbacks := newDispatcher()
	defer callbacks.close()

	timer := time.AfterFunc(c.timeout, func() {
		c.failConnect(gen, ErrTimeout, onConnectError)
	})
	defer timer.Stop()

	if err := conn.Connect(ctx); err != nil {
		c.failConnect(gen, err, onConnectError)
		return
	}
	if !c.current(gen) {
		conn.Close()
		return
	}

	data, err := encode(hs)
	if err == nil {
		err = c.write(conn, Message{Type: MessageConnect, Data: data})
	}
	if err != nil {
		c.failConnect(gen, err, onConnectError)
		return
	}

	for {
		raw, err := conn.Receive()
		if err != nil {
			c.lost(gen, err, onConnectError)
			return
		}

		msg, err := decodeMessage(raw)
		if err != nil {
			c.logger.Debug().Err(err).Msg("dropping frame")
			continue
		}

		switch msg.Type {
		case MessageConnect:
			timer.Stop()
			c.acknowledge(gen, onConnect, callbacks)
		case MessageConnectError:
			timer.Stop()
			cerr := &ConnectError{}
			if len(msg.Data) > 0 {
				_ = json.Unmarshal(msg.Data, cerr)
			}
			c.failConnect(gen, cerr, onConnectError)
			return
		case MessageAck:
			c.resolve(msg)
		case MessageEvent:
			callbacks.push(func() { c.dispatch(gen, msg) })
		default:
			c.logger.Debug().Str("type", string(msg.Type)).Msg("unknown frame type")
		}
	}
}

func (c *Client) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gen == gen && c.state == StateConnecting
}

// acknowledge moves a connecting generation to connected. Every live entry
// of the registry is bound again, in registration order, before onConnect is
// queued. Waiters are released here, not after onConnect returns.
func (c *Client) acknowledge(gen uint64, onConnect func(), callbacks *dispatcher) {
	c.mu.Lock()
	if c.gen != gen || c.state != StateConnecting {
		c.mu.Unlock()
		return
	}
	c.state = StateConnected

	snapshot := make([]*subscription, len(c.registry))
	copy(snapshot, c.registry)
	c.live = make(map[Event][]*subscription)
	bound := 0
	for _, s := range snapshot {
		if s.isUnbound() {
			continue
		}
		c.bindLocked(s)
		bound++
	}

	waiters := c.waiters
	c.waiters = make(map[uint64]func())
	c.mu.Unlock()

	metrics.ObserveConnect("ok")
	c.logger.Info().Str("url", c.url).Int("handlers", bound).Msg("connected")

	for _, notify := range waiters {
		notify()
	}
	if onConnect != nil {
		callbacks.push(onConnect)
	}
}

func (c *Client) failConnect(gen uint64, err error, onConnectError func(error)) {
	c.mu.Lock()
	if c.gen != gen || c.state != StateConnecting {
		c.mu.Unlock()
		return
	}
	old := c.dropLocked(err)
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}

	metrics.ObserveConnect("error")
	c.logger.Warn().Err(err).Str("url", c.url).Msg("connect failed")

	if onConnectError != nil {
		onConnectError(err)
	}
}

// lost handles a read failure on an established or connecting transport.
func (c *Client) lost(gen uint64, err error, onConnectError func(error)) {
	c.mu.Lock()
	if c.gen != gen || c.state == StateDisconnected {
		c.mu.Unlock()
		return
	}
	if c.state == StateConnecting {
		c.mu.Unlock()
		c.failConnect(gen, err, onConnectError)
		return
	}
	old := c.dropLocked(fmt.Errorf("%w: %v", ErrDisconnected, err))
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}
	c.logger.Warn().Err(err).Msg("connection lost")
}

func (c *Client) write(conn Transport, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Send(data)
}

// emit sends one call and waits for its single correlated reply. It fails
// at once, without registering anything, when not connected.
func (c *Client) emit(ctx context.Context, event Event, payload any) (json.RawMessage, error) {
	data, err := encode(payload)
	if err != nil {
		return nil, fmt.Errorf("socket: encode %s: %w", event, err)
	}

	c.mu.Lock()
	if c.state != StateConnected {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	id := uuid.NewString()
	reply := deferred.New[json.RawMessage]()
	c.pending[id] = reply
	conn := c.conn
	c.mu.Unlock()

	if err := c.write(conn, Message{Type: MessageEvent, ID: id, Event: event, Data: data}); err != nil {
		c.forget(id)
		return nil, fmt.Errorf("socket: send %s: %w", event, err)
	}

	result, err := reply.Wait(ctx)
	if err != nil {
		c.forget(id)
		return nil, err
	}
	return result, nil
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.pending, id)
}

func (c *Client) resolve(msg Message) {
	c.mu.Lock()
	reply, ok := c.pending[msg.ID]
	delete(c.pending, msg.ID)
	c.mu.Unlock()

	if !ok {
		c.logger.Debug().Str("id", msg.ID).Msg("ack without pending call")
		return
	}
	reply.Resolve(msg.Data)
}

func (c *Client) dispatch(gen uint64, msg Message) {
	c.mu.Lock()
	if c.gen != gen || c.state != StateConnected {
		c.mu.Unlock()
		return
	}
	handlers := make([]*subscription, len(c.live[msg.Event]))
	copy(handlers, c.live[msg.Event])
	c.mu.Unlock()

	if len(handlers) == 0 {
		c.logger.Trace().Str("event", string(msg.Event)).Msg("no handler bound")
		return
	}

	for _, s := range handlers {
		s.handler(msg.Data)
	}
}

func (c *Client) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

func (c *Client) waiterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.waiters)
}
