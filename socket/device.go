package socket

import (
	"context"
	"encoding/json"

	"github.com/kleeedolinux/central.go/model"
)

// DeviceGetInfo asks the remote for the device bound to the connection token.
func (c *Client) DeviceGetInfo(ctx context.Context) (model.SocketResponse[model.Device], error) {
	return Call[model.Device](ctx, c, c.events.DeviceGetInfo, nil)
}

func (c *Client) DeviceUpdateStatus(ctx context.Context, status model.DeviceStatus) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.DeviceUpdateStatus, struct {
		Status model.DeviceStatus `json:"status"`
	}{status})
}

func (c *Client) DeviceUpdateStatistics(ctx context.Context, deviceID string, statistics model.DeviceStatistics) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.DeviceUpdateStatistics, struct {
		DeviceID   string                 `json:"deviceId"`
		Statistics model.DeviceStatistics `json:"statistics"`
	}{deviceID, statistics})
}

func (c *Client) DeviceUpdateIperf(ctx context.Context, deviceID string, result model.IperfResult) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.DeviceUpdateIperf, struct {
		DeviceID      string            `json:"deviceId"`
		IperfResponse model.IperfResult `json:"iperfResponse"`
	}{deviceID, result})
}

func (c *Client) DeviceUpdateServiceOperationModes(ctx context.Context, modes []model.ServiceOperationMode) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.DeviceUpdateServiceOperationModes, struct {
		OperationModes []model.ServiceOperationMode `json:"operationModes"`
	}{modes})
}

// DeviceSubscribeStatistics starts statistics pushes for the given devices.
// The reply lists every device the connection is now subscribed to.
func (c *Client) DeviceSubscribeStatistics(ctx context.Context, deviceIDs ...string) (model.SocketResponse[model.Subscriptions], error) {
	return Call[model.Subscriptions](ctx, c, c.events.DeviceSubscribeStatistics, struct {
		DeviceIDs []string `json:"deviceIds"`
	}{deviceIDs})
}

// DeviceUnsubscribeStatistics stops statistics pushes. With no ids every
// subscription is dropped.
func (c *Client) DeviceUnsubscribeStatistics(ctx context.Context, deviceIDs ...string) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.DeviceUnsubscribeStatistics, struct {
		DeviceIDs []string `json:"deviceIds,omitempty"`
	}{deviceIDs})
}

func (c *Client) DeviceOnUpdate(fn func(device model.Device)) Unsubscribe {
	return subscribe(c, c.events.DeviceUpdated, true, func(p struct {
		Device model.Device `json:"device"`
	}) {
		fn(p.Device)
	})
}

func (c *Client) DeviceOnUpdateStatistics(fn func(statistics model.DeviceStatistics, deviceID string)) Unsubscribe {
	return subscribe(c, c.events.DeviceStatisticsUpdated, false, func(p struct {
		DeviceID   string                 `json:"deviceId"`
		Statistics model.DeviceStatistics `json:"statistics"`
	}) {
		fn(p.Statistics, p.DeviceID)
	})
}

func (c *Client) DeviceOnUpdateStatus(fn func(status model.DeviceStatus)) Unsubscribe {
	return subscribe(c, c.events.DeviceStatusUpdated, true, func(p struct {
		Status model.DeviceStatus `json:"status"`
	}) {
		fn(p.Status)
	})
}

func (c *Client) DeviceOnRequestOwnership(fn func(code model.OwnershipCode)) Unsubscribe {
	return subscribe(c, c.events.DeviceRequestOwnership, true, func(p struct {
		Code model.OwnershipCode `json:"code"`
	}) {
		fn(p.Code)
	})
}

// DeviceOnRefreshClient fires when the remote wants the device to reload
// its state.
func (c *Client) DeviceOnRefreshClient(fn func()) Unsubscribe {
	if fn == nil {
		panic("socket: nil callback")
	}
	return c.On(c.events.DeviceRefreshClient, func(json.RawMessage) { fn() }, true)
}

func (c *Client) DeviceOnRequestIperf(fn func(req model.IperfRequest)) Unsubscribe {
	return subscribe(c, c.events.DeviceRequestIperf, true, func(p struct {
		Iperf model.IperfRequest `json:"iperf"`
	}) {
		fn(p.Iperf)
	})
}

func (c *Client) DeviceOnUpdateIperf(fn func(result model.IperfResult)) Unsubscribe {
	return subscribe(c, c.events.DeviceIperfUpdated, false, func(p struct {
		IperfResponse model.IperfResult `json:"iperfResponse"`
	}) {
		fn(p.IperfResponse)
	})
}

func (c *Client) DeviceOnUpdateConfig(fn func(update model.ServiceConfigUpdate)) Unsubscribe {
	return subscribe(c, c.events.DeviceConfigUpdated, true, fn)
}
