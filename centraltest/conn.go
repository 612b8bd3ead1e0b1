package centraltest

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/socket"
)

var errConnClosed = errors.New("centraltest: connection closed")

// Conn is the remote end of one client connection.
type Conn struct {
	id        string
	ws        *websocket.Conn
	handshake socket.Handshake

	sendCh  chan []byte
	closeCh chan struct{}
	writeWg sync.WaitGroup

	mu           sync.Mutex
	closed       bool
	writeTimeout time.Duration
	logger       zerolog.Logger
}

func newConn(id string, ws *websocket.Conn, logger zerolog.Logger) *Conn {
	c := &Conn{
		id:           id,
		ws:           ws,
		sendCh:       make(chan []byte, 100),
		closeCh:      make(chan struct{}),
		writeTimeout: 5 * time.Second,
		logger:       logger.With().Str("conn", id).Logger(),
	}

	c.writeWg.Add(1)
	go c.writePump()

	return c
}

func (c *Conn) ID() string {
	return c.id
}

// Handshake returns the payload the client opened the connection with.
func (c *Conn) Handshake() socket.Handshake {
	return c.handshake
}

// Emit pushes event to this client without expecting a reply.
func (c *Conn) Emit(event socket.Event, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.write(socket.Message{Type: socket.MessageEvent, Event: event, Data: raw})
}

func (c *Conn) write(msg socket.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errConnClosed
	}

	select {
	case c.sendCh <- data:
		return nil
	default:
		c.logger.Debug().Msg("send buffer full")
		return errors.New("centraltest: send buffer full")
	}
}

func (c *Conn) writePump() {
	defer c.writeWg.Done()

	for {
		select {
		case <-c.closeCh:
			// flush what was queued before Close
			for {
				select {
				case data := <-c.sendCh:
					if c.send(data) != nil {
						return
					}
				default:
					return
				}
			}
		case data := <-c.sendCh:
			if c.send(data) != nil {
				return
			}
		}
	}
}

func (c *Conn) send(data []byte) error {
	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	err := c.ws.WriteMessage(websocket.TextMessage, data)
	if err != nil {
		c.logger.Debug().Err(err).Msg("write failed")
	}
	return err
}

func (c *Conn) read() (socket.Message, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return socket.Message{}, err
	}

	var msg socket.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return socket.Message{}, err
	}
	return msg, nil
}

// Close drops the connection from the remote side.
func (c *Conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.closeCh)
	c.mu.Unlock()

	c.writeWg.Wait()

	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)

	return c.ws.Close()
}
