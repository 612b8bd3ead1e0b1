package socket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleeedolinux/central.go/model"
)

func TestCall_NotConnectedFailsImmediately(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	resp, err := c.DeviceUpdateStatus(context.Background(), model.DeviceStatus{Online: true})
	require.ErrorIs(t, err, ErrNotConnected)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, c.pendingCount())
	assert.Equal(t, 0, r.dialCount())
	assert.Equal(t, "socket not connected", err.Error())
}

func TestConnect_SendsHandshake(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r, WithToken("abc"))
	c.SetLocale("pt-BR")

	connect(t, c)

	assert.True(t, c.Connected())
	assert.Equal(t, StateConnected, c.State())
	assert.Equal(t, Handshake{Token: "abc", Locale: "pt-BR"}, r.lastHandshake(t))
}

func TestSetToken_UsedByNextConnect(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r, WithToken("old"))
	connect(t, c)

	c.SetToken("new")
	assert.Equal(t, "new", c.Token())
	assert.Equal(t, "old", r.lastHandshake(t).Token)

	connect(t, c)
	assert.Equal(t, "new", r.lastHandshake(t).Token)
}

func TestConnect_ConnectError(t *testing.T) {
	r := newFakeRemote()
	r.reject = "invalid token"
	c := newTestClient(t, r)

	errCh := make(chan error, 1)
	c.Connect(func() { t.Error("onConnect called") }, func(err error) { errCh <- err })

	select {
	case err := <-errCh:
		var cerr *ConnectError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "invalid token", cerr.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("onConnectError not called")
	}
	assert.Equal(t, StateDisconnected, c.State())
}

func TestConnect_TimeoutWithoutAck(t *testing.T) {
	r := newFakeRemote()
	r.ack = false
	c := newTestClient(t, r)

	errCh := make(chan error, 1)
	c.Connect(nil, func(err error) { errCh <- err })

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrTimeout)
	case <-time.After(2 * time.Second):
		t.Fatal("onConnectError not called")
	}
	assert.False(t, c.Connected())
}

func TestOn_RebindsAfterReconnect(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	var calls atomic.Int32
	c.On("X", func(json.RawMessage) { calls.Add(1) }, true)

	connect(t, c)
	c.Disconnect()
	assert.False(t, c.Connected())

	connect(t, c)
	r.push(t, "X", map[string]any{"n": 1})

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestOn_Exclusivity(t *testing.T) {
	tests := []struct {
		name       string
		exclusive  bool
		beforeConn bool
		wantA      int32
		wantB      int32
	}{
		{"exclusive registered before connect", true, true, 0, 1},
		{"exclusive registered while connected", true, false, 0, 1},
		{"accumulating registered before connect", false, true, 1, 1},
		{"accumulating registered while connected", false, false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRemote()
			c := newTestClient(t, r)

			var a, b atomic.Int32
			register := func() {
				c.On("E", func(json.RawMessage) { a.Add(1) }, tt.exclusive)
				c.On("E", func(json.RawMessage) { b.Add(1) }, tt.exclusive)
			}

			if tt.beforeConn {
				register()
				connect(t, c)
			} else {
				connect(t, c)
				register()
			}

			r.push(t, "E", nil)

			assert.Eventually(t, func() bool { return b.Load() == tt.wantB }, time.Second, 5*time.Millisecond)
			assert.Never(t, func() bool { return a.Load() != tt.wantA }, 50*time.Millisecond, 5*time.Millisecond)
		})
	}
}

func TestOn_Unsubscribe(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	var a, b atomic.Int32
	offA := c.On("E", func(json.RawMessage) { a.Add(1) }, false)
	c.On("E", func(json.RawMessage) { b.Add(1) }, false)

	connect(t, c)
	offA()
	offA()
	assert.Equal(t, 1, c.boundCount("E"))

	connect(t, c)
	assert.Equal(t, 1, c.boundCount("E"))

	r.push(t, "E", nil)
	assert.Eventually(t, func() bool { return b.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), a.Load())
}

func TestOn_HandlerRegisteredInsideOnConnect(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	var calls atomic.Int32
	done := make(chan struct{})
	c.Connect(func() {
		c.On("late", func(json.RawMessage) { calls.Add(1) }, true)
		close(done)
	}, nil)
	<-done

	r.push(t, "late", nil)
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWaitConnected_Timeout(t *testing.T) {
	r := newFakeRemote()
	r.ack = false
	c := newTestClient(t, r)

	c.Connect(nil, nil)

	start := time.Now()
	err := c.WaitConnected(context.Background(), 100*time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, 0, c.waiterCount())
}

func TestWaitConnected_ResolvesBeforeTimeout(t *testing.T) {
	r := newFakeRemote()
	r.ackDelay = 50 * time.Millisecond
	c := newTestClient(t, r)

	c.Connect(nil, nil)

	err := c.WaitConnected(context.Background(), 100*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, c.Connected())
	assert.Equal(t, 0, c.waiterCount())

	// the timer of the settled wait must not leave anything behind
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, c.waiterCount())
}

func TestWaitConnected_AlreadyConnected(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)
	connect(t, c)

	require.NoError(t, c.WaitConnected(context.Background(), 0))
}

func TestWaitConnected_ContextCanceled(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.WaitConnected(ctx, 0)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, c.waiterCount())
}

func TestTryConnect_SingleAttempt(t *testing.T) {
	t.Run("while connected", func(t *testing.T) {
		r := newFakeRemote()
		c := newTestClient(t, r)
		connect(t, c)

		c.TryConnect(nil, nil)
		c.TryConnect(nil, nil)

		assert.Never(t, func() bool { return r.dialCount() != 1 }, 50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("back to back", func(t *testing.T) {
		r := newFakeRemote()
		r.ackDelay = 20 * time.Millisecond
		c := newTestClient(t, r)

		c.TryConnect(nil, nil)
		c.TryConnect(nil, nil)

		require.NoError(t, c.WaitConnected(context.Background(), time.Second))
		assert.Equal(t, 1, r.dialCount())
	})
}

func TestDisconnect_WhileConnecting(t *testing.T) {
	r := newFakeRemote()
	r.ackDelay = 30 * time.Millisecond
	c := newTestClient(t, r)

	var connected atomic.Bool
	c.Connect(func() { connected.Store(true) }, nil)
	c.Disconnect()

	assert.Equal(t, StateDisconnected, c.State())
	assert.Never(t, connected.Load, 80*time.Millisecond, 5*time.Millisecond)
}

func TestCall_Correlation(t *testing.T) {
	r := newFakeRemote()
	r.reply("echo", func(data json.RawMessage) any {
		var in struct {
			N int `json:"n"`
		}
		_ = json.Unmarshal(data, &in)
		return map[string]any{"success": true, "data": map[string]int{"n": in.N * 10}}
	})
	c := newTestClient(t, r)
	connect(t, c)

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := Call[struct {
				N int `json:"n"`
			}](context.Background(), c, "echo", map[string]int{"n": n})
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, n*10, resp.Data.N)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, c.pendingCount())
}

func TestCall_RemoteRejection(t *testing.T) {
	r := newFakeRemote()
	r.reply(DefaultEvents().ServiceUpdatePreview, func(json.RawMessage) any {
		return map[string]any{"success": false, "message": "not your service"}
	})
	c := newTestClient(t, r)
	connect(t, c)

	resp, err := c.ServiceUpdatePreview(context.Background(), "s1", "data:image/png;base64,AA==")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "not your service", resp.Message)
}

func TestCall_ContextCanceledForgetsPending(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)
	connect(t, c)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := Call[model.Empty](ctx, c, "silent", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, c.pendingCount())
}

func TestPendingOnDisconnect(t *testing.T) {
	t.Run("rejected when configured", func(t *testing.T) {
		r := newFakeRemote()
		c := newTestClient(t, r, WithRejectPendingOnDisconnect(true))
		connect(t, c)

		errCh := make(chan error, 1)
		go func() {
			_, err := Call[model.Empty](context.Background(), c, "silent", nil)
			errCh <- err
		}()

		require.Eventually(t, func() bool { return c.pendingCount() == 1 }, time.Second, 5*time.Millisecond)
		c.Disconnect()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrDisconnected)
		case <-time.After(time.Second):
			t.Fatal("pending call not rejected")
		}
	})

	t.Run("left to the caller by default", func(t *testing.T) {
		r := newFakeRemote()
		c := newTestClient(t, r)
		connect(t, c)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			_, err := Call[model.Empty](ctx, c, "silent", nil)
			errCh <- err
		}()

		require.Eventually(t, func() bool { return c.pendingCount() == 1 }, time.Second, 5*time.Millisecond)
		c.Disconnect()
		assert.Equal(t, 0, c.pendingCount())

		select {
		case <-errCh:
			t.Fatal("pending call settled by disconnect")
		case <-time.After(50 * time.Millisecond):
		}

		cancel()
		assert.ErrorIs(t, <-errCh, context.Canceled)
	})
}

func TestRemoteDrop_MarksDisconnected(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)
	connect(t, c)

	r.latest(t).Close()

	assert.Eventually(t, func() bool { return !c.Connected() }, time.Second, 5*time.Millisecond)

	_, err := c.DeviceUpdateStatus(context.Background(), model.DeviceStatus{})
	assert.True(t, errors.Is(err, ErrNotConnected))
}

func TestWithEvents_OverridesNames(t *testing.T) {
	r := newFakeRemote()
	events := DefaultEvents()
	events.DeviceUpdateStatus = "device:status"
	r.reply("device:status", func(json.RawMessage) any { return map[string]any{"success": true} })

	c := newTestClient(t, r, WithEvents(events))
	connect(t, c)

	resp, err := c.DeviceUpdateStatus(context.Background(), model.DeviceStatus{Online: true})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCall_InsideOnConnect(t *testing.T) {
	r := newFakeRemote()
	r.reply("status", func(json.RawMessage) any { return map[string]any{"success": true, "data": "online"} })
	c := newTestClient(t, r)

	release := make(chan struct{})
	type result struct {
		resp model.SocketResponse[string]
		err  error
	}
	got := make(chan result, 1)

	c.Connect(func() {
		<-release
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		resp, err := Call[string](ctx, c, "status", nil)
		got <- result{resp, err}
	}, nil)

	// onConnect is still blocked, the waiter must be released by the ack.
	require.NoError(t, c.WaitConnected(context.Background(), time.Second))
	close(release)

	select {
	case res := <-got:
		require.NoError(t, res.err)
		assert.True(t, res.resp.Success)
		assert.Equal(t, "online", res.resp.Data)
	case <-time.After(2 * time.Second):
		t.Fatal("call inside onConnect did not return")
	}
}

func TestCall_InsideHandler(t *testing.T) {
	r := newFakeRemote()
	r.reply("pong", func(data json.RawMessage) any { return map[string]any{"success": true, "data": data} })
	c := newTestClient(t, r)

	got := make(chan error, 2)
	c.On("ping", func(data json.RawMessage) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		resp, err := Call[int](ctx, c, "pong", data)
		if err == nil && !resp.Success {
			err = errors.New(resp.Message)
		}
		got <- err
	}, false)

	connect(t, c)
	r.push(t, "ping", 1)
	r.push(t, "ping", 2)

	for i := 0; i < 2; i++ {
		select {
		case err := <-got:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("call inside handler did not return")
		}
	}
}

func TestDispatch_PreservesArrivalOrder(t *testing.T) {
	r := newFakeRemote()
	c := newTestClient(t, r)

	var (
		mu    sync.Mutex
		order []int
	)
	c.On("seq", func(data json.RawMessage) {
		var n int
		_ = json.Unmarshal(data, &n)
		mu.Lock()
		order = append(order, n)
		mu.Unlock()
	}, true)

	connect(t, c)
	for i := 0; i < 20; i++ {
		r.push(t, "seq", i)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 20
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i, n := range order {
		assert.Equal(t, i, n)
	}
}
