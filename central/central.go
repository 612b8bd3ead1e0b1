// Package central is the session facade over the Central request and event
// channels. One Client owns one channel of each kind and keeps their
// credentials in step.
package central

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/config"
	"github.com/kleeedolinux/central.go/debug"
	"github.com/kleeedolinux/central.go/model"
	"github.com/kleeedolinux/central.go/rest"
	"github.com/kleeedolinux/central.go/socket"
)

type Client struct {
	// guards the token/locale fan-out so both channels always agree
	mu sync.Mutex

	http   *rest.Client
	socket *socket.Client
	logger zerolog.Logger
}

type options struct {
	rest   []rest.ClientOption
	socket []socket.ClientOption
	logger *zerolog.Logger
}

type Option func(*options)

func WithRESTOptions(opts ...rest.ClientOption) Option {
	return func(o *options) {
		o.rest = append(o.rest, opts...)
	}
}

func WithSocketOptions(opts ...socket.ClientOption) Option {
	return func(o *options) {
		o.socket = append(o.socket, opts...)
	}
}

// WithLogger sets the logger of the facade and both channels.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// New builds a session from cfg. Zero fields take their defaults; the event
// channel path is derived from the HTTP prefix.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("central: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := debug.Logger("central")
	if o.logger != nil {
		logger = *o.logger
		o.rest = append([]rest.ClientOption{rest.WithLogger(logger.With().Str("component", "rest").Logger())}, o.rest...)
		o.socket = append([]socket.ClientOption{socket.WithLogger(logger.With().Str("component", "socket").Logger())}, o.socket...)
	}

	c := &Client{
		http:   rest.NewClient(cfg, o.rest...),
		socket: socket.NewClient(cfg, o.socket...),
		logger: logger,
	}

	c.logger.Debug().
		Str("api", c.http.BaseURL()).
		Str("socket", c.socket.URL()).
		Msg("session created")

	return c, nil
}

// REST exposes the request channel.
func (c *Client) REST() *rest.Client {
	return c.http
}

// Socket exposes the event channel.
func (c *Client) Socket() *socket.Client {
	return c.socket
}

func (c *Client) Locale() string {
	return c.http.Locale()
}

// SetLocale updates both channels before returning. The event channel uses
// the new locale from its next connect.
func (c *Client) SetLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.http.SetLocale(locale)
	c.socket.SetLocale(locale)
}

// SetToken updates both channels before returning. The event channel uses
// the new token from its next connect.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.http.SetToken(token)
	c.socket.SetToken(token)
}

func (c *Client) OnUnauthorized(handler func()) rest.InterceptorHandle {
	return c.http.OnUnauthorized(handler)
}

func (c *Client) EjectOnUnauthorized(h rest.InterceptorHandle) {
	c.http.EjectOnUnauthorized(h)
}

// AuthLogin logs in over HTTP. On success both channels hold the returned
// token when it returns, so a following SocketConnect authenticates with it.
func (c *Client) AuthLogin(ctx context.Context, key, password string) model.Response[model.AuthInfo] {
	r := c.http.AuthLogin(ctx, key, password)
	if r.Success {
		c.SetToken(r.Data.Token)
		c.logger.Debug().Msg("logged in")
	}
	return r
}

func (c *Client) AuthRefreshToken(ctx context.Context, refreshToken string) model.Response[model.AuthInfo] {
	r := c.http.AuthRefreshToken(ctx, refreshToken)
	if r.Success {
		c.SetToken(r.Data.Token)
		c.logger.Debug().Msg("token refreshed")
	}
	return r
}

// SocketConnect opens the event channel in the background. onConnect runs on
// the channel's dispatch goroutine and may issue socket calls.
func (c *Client) SocketConnect(onConnect func(), onConnectError func(error)) {
	c.socket.Connect(onConnect, onConnectError)
}

func (c *Client) SocketTryConnect(onConnect func(), onConnectError func(error)) {
	c.socket.TryConnect(onConnect, onConnectError)
}

func (c *Client) SocketDisconnect() {
	c.socket.Disconnect()
}

// SocketConnected reads the live state of the event channel.
func (c *Client) SocketConnected() bool {
	return c.socket.Connected()
}

func (c *Client) SocketWaitConnected(ctx context.Context, timeout time.Duration) error {
	return c.socket.WaitConnected(ctx, timeout)
}

// Close drops the event channel connection. The request channel holds no
// connection of its own.
func (c *Client) Close() {
	c.socket.Disconnect()
}
