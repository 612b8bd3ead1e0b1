package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kleeedolinux/central.go/internal/metrics"
	"github.com/kleeedolinux/central.go/model"
)

// Call emits event with payload and waits for the remote's reply. It fails
// with ErrNotConnected, without sending anything, unless the channel is
// connected. There is no built-in deadline: bound the wait through ctx.
//
// A reply with success=false is returned as a response, not an error.
func Call[T any](ctx context.Context, c *Client, event Event, payload any) (model.SocketResponse[T], error) {
	var out model.SocketResponse[T]

	raw, err := c.emit(ctx, event, payload)
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			metrics.ObserveCall(string(event), "not_connected")
		} else {
			metrics.ObserveCall(string(event), "error")
		}
		return out, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			metrics.ObserveCall(string(event), "error")
			return out, fmt.Errorf("socket: decode %s reply: %w", event, err)
		}
	}

	if out.Success {
		metrics.ObserveCall(string(event), "ok")
	} else {
		metrics.ObserveCall(string(event), "rejected")
	}
	return out, nil
}

// subscribe registers fn for event, decoding each payload into T first.
// Payloads that do not decode are logged and dropped.
func subscribe[T any](c *Client, event Event, exclusive bool, fn func(T)) Unsubscribe {
	if fn == nil {
		panic("socket: nil callback")
	}

	return c.On(event, func(data json.RawMessage) {
		var v T
		if len(data) > 0 {
			if err := json.Unmarshal(data, &v); err != nil {
				c.logger.Warn().Err(err).Str("event", string(event)).Msg("undecodable payload")
				return
			}
		}
		fn(v)
	}, exclusive)
}
