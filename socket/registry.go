package socket

import (
	"encoding/json"
	"sync/atomic"
)

// Unsubscribe unbinds one handler from the live connection. The handler is
// not bound again on later reconnects.
type Unsubscribe func()

type subscription struct {
	event     Event
	handler   func(json.RawMessage)
	exclusive bool
	unbound   atomic.Bool
}

func (s *subscription) isUnbound() bool {
	return s.unbound.Load()
}

// On registers handler for event. While connected the handler is bound at
// once; every registered handler is bound again, in registration order, each
// time the channel connects. An exclusive handler displaces whatever is bound
// to the same event, so the last exclusive registration wins. Non-exclusive
// handlers accumulate.
//
// Handlers run one at a time on the connection's dispatch goroutine, in the
// order events arrive. A handler may make a Call; later events wait for it.
func (c *Client) On(event Event, handler func(data json.RawMessage), exclusive bool) Unsubscribe {
	if handler == nil {
		panic("socket: nil handler")
	}

	s := &subscription{event: event, handler: handler, exclusive: exclusive}

	c.mu.Lock()
	c.registry = append(c.registry, s)
	if c.state == StateConnected {
		c.bindLocked(s)
	}
	c.mu.Unlock()

	c.logger.Debug().Str("event", string(event)).Bool("exclusive", exclusive).Msg("handler registered")

	return func() { c.unbind(s) }
}

// bindLocked must hold c.mu.
func (c *Client) bindLocked(s *subscription) {
	if s.exclusive {
		c.live[s.event] = []*subscription{s}
		return
	}
	c.live[s.event] = append(c.live[s.event], s)
}

func (c *Client) unbind(s *subscription) {
	if s.unbound.Swap(true) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bound := c.live[s.event]
	for i, b := range bound {
		if b == s {
			c.live[s.event] = append(bound[:i:i], bound[i+1:]...)
			break
		}
	}
	if len(c.live[s.event]) == 0 {
		delete(c.live, s.event)
	}

	kept := c.registry[:0:0]
	for _, r := range c.registry {
		if r != s {
			kept = append(kept, r)
		}
	}
	c.registry = kept
}

func (c *Client) boundCount(event Event) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.live[event])
}
