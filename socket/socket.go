package socket

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Event string

type MessageType string

const (
	MessageConnect      MessageType = "connect"
	MessageConnectError MessageType = "connect_error"
	MessageEvent        MessageType = "event"
	MessageAck          MessageType = "ack"
)

// Message is the frame exchanged on the event channel. Calls carry an ID and
// are answered by exactly one ack with the same ID; pushes carry none.
type Message struct {
	Type  MessageType     `json:"type"`
	ID    string          `json:"id,omitempty"`
	Event Event           `json:"event,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Handshake is sent as the first frame of every connection.
type Handshake struct {
	Token  string `json:"token,omitempty"`
	Locale string `json:"locale,omitempty"`
}

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var (
	ErrNotConnected   = errors.New("socket not connected")
	ErrDisconnected   = errors.New("socket disconnected")
	ErrTimeout        = errors.New("timeout")
	ErrInvalidMessage = errors.New("invalid message format")
)

// ConnectError is reported when the remote refuses the handshake.
type ConnectError struct {
	Message string `json:"message"`
}

func (e *ConnectError) Error() string {
	if e.Message == "" {
		return "connect error"
	}
	return "connect error: " + e.Message
}
