// Package centraltest runs an in-process fake Central remote that speaks
// both the HTTP API and the event channel protocol.
package centraltest

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/config"
	"github.com/kleeedolinux/central.go/debug"
	"github.com/kleeedolinux/central.go/model"
	"github.com/kleeedolinux/central.go/socket"
)

// Reply is what a Handler answers a call with.
type Reply = model.SocketResponse[any]

// Handler answers one call on the event channel.
type Handler func(c *Conn, data json.RawMessage) Reply

// Route answers one HTTP request. The body is encoded as JSON.
type Route func(r *Request) (status int, body any)

// Request is an HTTP request as the remote saw it.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   json.RawMessage
}

type Server struct {
	mu       sync.RWMutex
	conns    map[string]*Conn
	handlers map[socket.Event]Handler
	routes   map[string]Route

	handshakes []socket.Handshake
	upgrades   []http.Header
	requests   []Request
	received   []socket.Message

	rejectWith   string
	silent       bool
	connectDelay time.Duration
	onConnect    []func(*Conn)

	prefix   string
	upgrader websocket.Upgrader
	srv      *httptest.Server
	logger   zerolog.Logger
}

type Option func(*Server)

func WithPrefix(prefix string) Option {
	return func(s *Server) {
		s.prefix = prefix
	}
}

// WithConnectDelay holds every connect acknowledgment back by d.
func WithConnectDelay(d time.Duration) Option {
	return func(s *Server) {
		s.connectDelay = d
	}
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		conns:    make(map[string]*Conn),
		handlers: make(map[socket.Event]Handler),
		routes:   make(map[string]Route),
		prefix:   config.Default().Prefix,
		logger:   debug.Logger("centraltest"),
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.prefix+"/socket.io", s.handleSocket)
	mux.HandleFunc("/", s.handleHTTP)
	s.srv = httptest.NewServer(mux)

	return s
}

func (s *Server) Close() {
	s.DropAll()
	s.srv.Close()
}

// Config returns a client configuration pointing at this server.
func (s *Server) Config() config.Config {
	cfg := config.Default()
	host, port, _ := net.SplitHostPort(s.srv.Listener.Addr().String())
	cfg.Host = host
	cfg.Port, _ = strconv.Atoi(port)
	cfg.Prefix = s.prefix
	cfg.Timeout = time.Second
	return cfg
}

// Route installs fn for method and path. path excludes the API prefix.
func (s *Server) Route(method, path string, fn Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes[method+" "+path] = fn
}

// HandleFunc installs the handler answering calls to event.
func (s *Server) HandleFunc(event socket.Event, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[event] = handler
}

// OnConnect runs fn for every acknowledged connection.
func (s *Server) OnConnect(fn func(*Conn)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onConnect = append(s.onConnect, fn)
}

// RejectConnections answers every later handshake with connect_error and
// message. An empty message accepts again.
func (s *Server) RejectConnections(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rejectWith = message
}

// SetSilent stops the server from acknowledging handshakes.
func (s *Server) SetSilent(silent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.silent = silent
}

func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent HTTP request, or false if none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) Handshakes() []socket.Handshake {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]socket.Handshake(nil), s.handshakes...)
}

// UpgradeHeaders returns the headers of every websocket upgrade request.
func (s *Server) UpgradeHeaders() []http.Header {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.upgrades)
}

// Received lists every event frame clients sent, in arrival order.
func (s *Server) Received() []socket.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]socket.Message(nil), s.received...)
}

func (s *Server) ConnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.conns)
}

// Broadcast pushes event to every connected client.
func (s *Server) Broadcast(event socket.Event, data any) {
	s.mu.RLock()
	conns := make([]*Conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	s.logger.Debug().Str("event", string(event)).Int("clients", len(conns)).Msg("broadcast")

	for _, c := range conns {
		if err := c.Emit(event, data); err != nil {
			s.logger.Debug().Err(err).Str("conn", c.ID()).Msg("broadcast failed")
		}
	}
}

// DropAll closes every connection from the remote side.
func (s *Server) DropAll() {
	s.mu.Lock()
	conns := s.conns
	s.conns = make(map[string]*Conn)
	s.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}

func (s *Server) handleHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, s.prefix)

	req := Request{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
	}
	if len(body) > 0 {
		req.Body = json.RawMessage(body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	route, ok := s.routes[r.Method+" "+path]
	s.mu.Unlock()

	status, reply := http.StatusNotFound, any(map[string]any{"success": false, "message": "not found"})
	if ok {
		status, reply = route(&req)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if reply != nil {
		_ = json.NewEncoder(w).Encode(reply)
	}
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.upgrades = append(s.upgrades, r.Header.Clone())
	s.mu.Unlock()

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug().Err(err).Msg("upgrade failed")
		return
	}

	c := newConn(uuid.NewString(), ws, s.logger)

	first, err := c.read()
	if err != nil || first.Type != socket.MessageConnect {
		s.logger.Debug().Err(err).Msg("missing handshake")
		c.Close()
		return
	}
	if len(first.Data) > 0 {
		_ = json.Unmarshal(first.Data, &c.handshake)
	}

	s.mu.Lock()
	s.handshakes = append(s.handshakes, c.handshake)
	reject, silent, delay := s.rejectWith, s.silent, s.connectDelay
	s.mu.Unlock()

	if reject != "" {
		data, _ := json.Marshal(socket.ConnectError{Message: reject})
		_ = c.write(socket.Message{Type: socket.MessageConnectError, Data: data})
		c.Close()
		return
	}

	if !silent {
		if delay > 0 {
			time.Sleep(delay)
		}
		s.accept(c)
	}

	s.serve(c)
}

func (s *Server) accept(c *Conn) {
	s.mu.Lock()
	s.conns[c.ID()] = c
	hooks := slices.Clone(s.onConnect)
	s.mu.Unlock()

	_ = c.write(socket.Message{Type: socket.MessageConnect})
	s.logger.Debug().Str("conn", c.ID()).Str("token", c.handshake.Token).Msg("accepted")

	for _, hook := range hooks {
		hook(c)
	}
}

func (s *Server) serve(c *Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, c.ID())
		s.mu.Unlock()
		c.Close()
	}()

	for {
		msg, err := c.read()
		if err != nil {
			return
		}
		if msg.Type != socket.MessageEvent {
			continue
		}

		s.mu.Lock()
		s.received = append(s.received, msg)
		handler, ok := s.handlers[msg.Event]
		s.mu.Unlock()

		if msg.ID == "" {
			continue
		}

		reply := Reply{Success: false, Message: "unknown event " + string(msg.Event)}
		if ok {
			reply = handler(c, msg.Data)
		}

		data, err := json.Marshal(reply)
		if err != nil {
			continue
		}
		_ = c.write(socket.Message{Type: socket.MessageAck, ID: msg.ID, Data: data})
	}
}
