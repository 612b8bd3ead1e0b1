package socket

import (
	"context"

	"github.com/kleeedolinux/central.go/model"
)

func (c *Client) ServiceUpdateStatus(ctx context.Context, status model.ServiceStatus) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.ServiceUpdateStatus, struct {
		Status model.ServiceStatus `json:"status"`
	}{status})
}

// ServiceUpdatePreview publishes an encoded preview frame for serviceID.
func (c *Client) ServiceUpdatePreview(ctx context.Context, serviceID, preview string) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.ServiceUpdatePreview, struct {
		ServiceID string `json:"serviceId"`
		Preview   string `json:"preview"`
	}{serviceID, preview})
}

func (c *Client) ServiceUpdateVu(ctx context.Context, serviceID string, volumes []float64) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.ServiceUpdateVu, struct {
		ServiceID string    `json:"serviceId"`
		Volumes   []float64 `json:"volumes"`
	}{serviceID, volumes})
}

func (c *Client) ServiceSubscribePreview(ctx context.Context, serviceIDs ...string) (model.SocketResponse[model.Subscriptions], error) {
	return Call[model.Subscriptions](ctx, c, c.events.ServiceSubscribePreview, struct {
		ServiceIDs []string `json:"serviceIds"`
	}{serviceIDs})
}

// ServiceUnsubscribePreview stops preview pushes. With no ids every
// subscription is dropped.
func (c *Client) ServiceUnsubscribePreview(ctx context.Context, serviceIDs ...string) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.ServiceUnsubscribePreview, struct {
		ServiceIDs []string `json:"serviceIds,omitempty"`
	}{serviceIDs})
}

// ServiceToggleRunning asks the device owning serviceID to start or stop it.
func (c *Client) ServiceToggleRunning(ctx context.Context, serviceID string, action model.ToggleRunningAction) (model.SocketResponse[model.Empty], error) {
	return Call[model.Empty](ctx, c, c.events.ServiceToggleRunning, model.ToggleRunning{ID: serviceID, Action: action})
}

func (c *Client) ServiceOnUpdate(fn func(service model.Service)) Unsubscribe {
	return subscribe(c, c.events.ServiceUpdated, true, func(p struct {
		Service model.Service `json:"service"`
	}) {
		fn(p.Service)
	})
}

func (c *Client) ServiceOnUpdateStatus(fn func(status model.ServiceStatus)) Unsubscribe {
	return subscribe(c, c.events.ServiceStatusUpdated, true, func(p struct {
		Status model.ServiceStatus `json:"status"`
	}) {
		fn(p.Status)
	})
}

func (c *Client) ServiceOnUpdatePreview(fn func(preview, serviceID string)) Unsubscribe {
	return subscribe(c, c.events.ServicePreviewUpdated, false, func(p struct {
		ServiceID string `json:"serviceId"`
		Preview   string `json:"preview"`
	}) {
		fn(p.Preview, p.ServiceID)
	})
}

func (c *Client) ServiceOnUpdateVu(fn func(volumes []float64, serviceID string)) Unsubscribe {
	return subscribe(c, c.events.ServiceVuUpdated, false, func(p struct {
		ServiceID string    `json:"serviceId"`
		Volumes   []float64 `json:"volumes"`
	}) {
		fn(p.Volumes, p.ServiceID)
	})
}

// ServiceOnToggleRunning fires on the device when a user starts or stops
// one of its services.
func (c *Client) ServiceOnToggleRunning(fn func(req model.ToggleRunning)) Unsubscribe {
	return subscribe(c, c.events.ServiceToggleRunningRequested, true, fn)
}
