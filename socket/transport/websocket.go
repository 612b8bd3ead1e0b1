package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/debug"
)

var ErrNotConnected = errors.New("not connected")

type WebSocketTransport struct {
	mu               sync.Mutex
	conn             *websocket.Conn
	url              string
	dialer           *websocket.Dialer
	headers          http.Header
	connected        bool
	readTimeout      time.Duration
	writeTimeout     time.Duration
	handshakeTimeout time.Duration
	compression      bool
	logger           zerolog.Logger
}

type WebSocketOption func(*WebSocketTransport)

func WithHeaders(headers http.Header) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.headers = headers
	}
}

// WithReadTimeout bounds every Receive. Zero, the default, waits forever,
// which is what a push channel needs between events.
func WithReadTimeout(timeout time.Duration) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.readTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.writeTimeout = timeout
	}
}

func WithHandshakeTimeout(timeout time.Duration) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.handshakeTimeout = timeout
	}
}

func WithCompression(enabled bool) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.compression = enabled
	}
}

func WithTLSConfig(cfg *tls.Config) WebSocketOption {
	return func(t *WebSocketTransport) {
		d := *t.dialer
		d.TLSClientConfig = cfg
		t.dialer = &d
	}
}

func WithLogger(logger zerolog.Logger) WebSocketOption {
	return func(t *WebSocketTransport) {
		t.logger = logger
	}
}

func NewWebSocketTransport(url string, opts ...WebSocketOption) *WebSocketTransport {
	t := &WebSocketTransport{
		url:              url,
		dialer:           websocket.DefaultDialer,
		headers:          make(http.Header),
		writeTimeout:     10 * time.Second,
		handshakeTimeout: 10 * time.Second,
		logger:           debug.Logger("transport"),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *WebSocketTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connected {
		return nil
	}

	t.logger.Debug().Str("url", t.url).Msg("dialing")

	dialer := *t.dialer
	dialer.HandshakeTimeout = t.handshakeTimeout

	if t.compression {
		dialer.EnableCompression = true
	}

	conn, resp, err := dialer.DialContext(ctx, t.url, t.headers)
	if err != nil {
		if resp != nil {
			t.logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("dial failed")
		} else {
			t.logger.Debug().Err(err).Msg("dial failed")
		}
		return err
	}

	t.logger.Debug().Msg("connected")
	t.conn = conn
	t.connected = true

	return nil
}

func (t *WebSocketTransport) Send(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected || t.conn == nil {
		return ErrNotConnected
	}

	if t.writeTimeout > 0 {
		if err := t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout)); err != nil {
			return err
		}
	}

	t.logger.Trace().RawJSON("frame", data).Msg("send")
	err := t.conn.WriteMessage(websocket.TextMessage, data)
	if err != nil {
		t.logger.Debug().Err(err).Msg("send failed")
	}
	return err
}

func (t *WebSocketTransport) Receive() ([]byte, error) {
	t.mu.Lock()
	conn := t.conn
	if !t.connected || conn == nil {
		t.mu.Unlock()
		return nil, ErrNotConnected
	}

	if t.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(t.readTimeout)); err != nil {
			t.mu.Unlock()
			return nil, err
		}
	}
	t.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		t.logger.Debug().Err(err).Msg("read failed")
		return nil, err
	}

	t.logger.Trace().Bytes("frame", message).Msg("receive")
	return message, nil
}

func (t *WebSocketTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected || t.conn == nil {
		return nil
	}

	t.logger.Debug().Msg("closing")

	err := t.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	if err != nil {
		t.logger.Debug().Err(err).Msg("close frame not sent")
	}

	err = t.conn.Close()
	t.connected = false
	t.conn = nil

	return err
}
