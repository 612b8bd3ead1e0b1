package central

import (
	"context"

	"github.com/kleeedolinux/central.go/model"
	"github.com/kleeedolinux/central.go/socket"
)

func (c *Client) DeviceGetInfo(ctx context.Context) (model.SocketResponse[model.Device], error) {
	return c.socket.DeviceGetInfo(ctx)
}

func (c *Client) DeviceUpdateStatus(ctx context.Context, status model.DeviceStatus) (model.SocketResponse[model.Empty], error) {
	return c.socket.DeviceUpdateStatus(ctx, status)
}

func (c *Client) DeviceUpdateStatistics(ctx context.Context, deviceID string, statistics model.DeviceStatistics) (model.SocketResponse[model.Empty], error) {
	return c.socket.DeviceUpdateStatistics(ctx, deviceID, statistics)
}

func (c *Client) DeviceUpdateIperf(ctx context.Context, deviceID string, result model.IperfResult) (model.SocketResponse[model.Empty], error) {
	return c.socket.DeviceUpdateIperf(ctx, deviceID, result)
}

func (c *Client) DeviceUpdateServiceOperationModes(ctx context.Context, modes []model.ServiceOperationMode) (model.SocketResponse[model.Empty], error) {
	return c.socket.DeviceUpdateServiceOperationModes(ctx, modes)
}

func (c *Client) DeviceSubscribeStatistics(ctx context.Context, deviceIDs ...string) (model.SocketResponse[model.Subscriptions], error) {
	return c.socket.DeviceSubscribeStatistics(ctx, deviceIDs...)
}

func (c *Client) DeviceUnsubscribeStatistics(ctx context.Context, deviceIDs ...string) (model.SocketResponse[model.Empty], error) {
	return c.socket.DeviceUnsubscribeStatistics(ctx, deviceIDs...)
}

func (c *Client) DeviceOnUpdate(fn func(device model.Device)) socket.Unsubscribe {
	return c.socket.DeviceOnUpdate(fn)
}

func (c *Client) DeviceOnUpdateStatistics(fn func(statistics model.DeviceStatistics, deviceID string)) socket.Unsubscribe {
	return c.socket.DeviceOnUpdateStatistics(fn)
}

func (c *Client) DeviceOnUpdateStatus(fn func(status model.DeviceStatus)) socket.Unsubscribe {
	return c.socket.DeviceOnUpdateStatus(fn)
}

func (c *Client) DeviceOnRequestOwnership(fn func(code model.OwnershipCode)) socket.Unsubscribe {
	return c.socket.DeviceOnRequestOwnership(fn)
}

func (c *Client) DeviceOnRefreshClient(fn func()) socket.Unsubscribe {
	return c.socket.DeviceOnRefreshClient(fn)
}

func (c *Client) DeviceOnRequestIperf(fn func(req model.IperfRequest)) socket.Unsubscribe {
	return c.socket.DeviceOnRequestIperf(fn)
}

func (c *Client) DeviceOnUpdateIperf(fn func(result model.IperfResult)) socket.Unsubscribe {
	return c.socket.DeviceOnUpdateIperf(fn)
}

func (c *Client) DeviceOnUpdateConfig(fn func(update model.ServiceConfigUpdate)) socket.Unsubscribe {
	return c.socket.DeviceOnUpdateConfig(fn)
}

func (c *Client) ServiceUpdateStatus(ctx context.Context, status model.ServiceStatus) (model.SocketResponse[model.Empty], error) {
	return c.socket.ServiceUpdateStatus(ctx, status)
}

func (c *Client) ServiceUpdatePreview(ctx context.Context, serviceID, preview string) (model.SocketResponse[model.Empty], error) {
	return c.socket.ServiceUpdatePreview(ctx, serviceID, preview)
}

func (c *Client) ServiceUpdateVu(ctx context.Context, serviceID string, volumes []float64) (model.SocketResponse[model.Empty], error) {
	return c.socket.ServiceUpdateVu(ctx, serviceID, volumes)
}

func (c *Client) ServiceSubscribePreview(ctx context.Context, serviceIDs ...string) (model.SocketResponse[model.Subscriptions], error) {
	return c.socket.ServiceSubscribePreview(ctx, serviceIDs...)
}

func (c *Client) ServiceUnsubscribePreview(ctx context.Context, serviceIDs ...string) (model.SocketResponse[model.Empty], error) {
	return c.socket.ServiceUnsubscribePreview(ctx, serviceIDs...)
}

func (c *Client) ServiceToggleRunning(ctx context.Context, serviceID string, action model.ToggleRunningAction) (model.SocketResponse[model.Empty], error) {
	return c.socket.ServiceToggleRunning(ctx, serviceID, action)
}

func (c *Client) ServiceOnUpdate(fn func(service model.Service)) socket.Unsubscribe {
	return c.socket.ServiceOnUpdate(fn)
}

func (c *Client) ServiceOnUpdateStatus(fn func(status model.ServiceStatus)) socket.Unsubscribe {
	return c.socket.ServiceOnUpdateStatus(fn)
}

func (c *Client) ServiceOnUpdatePreview(fn func(preview, serviceID string)) socket.Unsubscribe {
	return c.socket.ServiceOnUpdatePreview(fn)
}

func (c *Client) ServiceOnUpdateVu(fn func(volumes []float64, serviceID string)) socket.Unsubscribe {
	return c.socket.ServiceOnUpdateVu(fn)
}

func (c *Client) ServiceOnToggleRunning(fn func(req model.ToggleRunning)) socket.Unsubscribe {
	return c.socket.ServiceOnToggleRunning(fn)
}

func (c *Client) GroupOnUpdate(fn func(group model.Group)) socket.Unsubscribe {
	return c.socket.GroupOnUpdate(fn)
}

func (c *Client) UserOnUpdate(fn func(user model.User)) socket.Unsubscribe {
	return c.socket.UserOnUpdate(fn)
}
