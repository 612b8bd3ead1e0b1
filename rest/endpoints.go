package rest

import (
	"context"
	"net/http"

	"github.com/kleeedolinux/central.go/model"
)

// Auth

// AuthLogin exchanges credentials for a token. On success the token becomes
// the default Authorization header.
func (c *Client) AuthLogin(ctx context.Context, key, password string) model.Response[model.AuthInfo] {
	r := do[model.AuthInfo](ctx, c, http.MethodPost, "/auth/login", nil, map[string]string{
		"key":      key,
		"password": password,
	})
	if r.Success {
		c.acceptToken(r.Data.Token)
	}
	return r
}

func (c *Client) AuthRefreshToken(ctx context.Context, refreshToken string) model.Response[model.AuthInfo] {
	r := do[model.AuthInfo](ctx, c, http.MethodPost, "/auth/refresh-token", nil, map[string]string{
		"refreshToken": refreshToken,
	})
	if r.Success {
		c.acceptToken(r.Data.Token)
	}
	return r
}

func (c *Client) AuthChangePassword(ctx context.Context, oldPassword, newPassword string) model.Response[model.Empty] {
	return do[model.Empty](ctx, c, http.MethodPost, "/auth/change-password", nil, map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})
}

// User

func (c *Client) UserMe(ctx context.Context) model.Response[model.UserData] {
	return do[model.UserData](ctx, c, http.MethodGet, "/user/me", nil, nil)
}

func (c *Client) UserMyDevices(ctx context.Context) model.Response[model.DevicesData] {
	return do[model.DevicesData](ctx, c, http.MethodGet, "/user/me/devices", nil, nil)
}

func (c *Client) UserMyServices(ctx context.Context) model.Response[model.ServicesData] {
	return do[model.ServicesData](ctx, c, http.MethodGet, "/user/me/services", nil, nil)
}

func (c *Client) UserList(ctx context.Context, opts model.ListOptions) model.Response[model.UsersData] {
	return do[model.UsersData](ctx, c, http.MethodGet, "/user", listQuery(opts), nil)
}

func (c *Client) UserGet(ctx context.Context, id string) model.Response[model.UserData] {
	return do[model.UserData](ctx, c, http.MethodGet, resourcePath("/user", id), nil, nil)
}

func (c *Client) UserRegister(ctx context.Context, in model.UserInput) model.Response[model.UserData] {
	return do[model.UserData](ctx, c, http.MethodPost, "/user", nil, in)
}

func (c *Client) UserUpdate(ctx context.Context, id string, in model.UserInput) model.Response[model.UserData] {
	return do[model.UserData](ctx, c, http.MethodPut, resourcePath("/user", id), nil, in)
}

// Device

func (c *Client) DeviceMe(ctx context.Context) model.Response[model.DeviceData] {
	return do[model.DeviceData](ctx, c, http.MethodGet, "/device/me", nil, nil)
}

func (c *Client) DeviceMyServices(ctx context.Context) model.Response[model.ServicesData] {
	return do[model.ServicesData](ctx, c, http.MethodGet, "/device/me/services", nil, nil)
}

func (c *Client) DeviceList(ctx context.Context, opts model.ListOptions) model.Response[model.DevicesData] {
	return do[model.DevicesData](ctx, c, http.MethodGet, "/device", listQuery(opts), nil)
}

func (c *Client) DeviceGet(ctx context.Context, id string) model.Response[model.DeviceData] {
	return do[model.DeviceData](ctx, c, http.MethodGet, resourcePath("/device", id), nil, nil)
}

func (c *Client) DeviceRegister(ctx context.Context, in model.DeviceInput) model.Response[model.DeviceData] {
	return do[model.DeviceData](ctx, c, http.MethodPost, "/device", nil, in)
}

func (c *Client) DeviceUpdate(ctx context.Context, id string, in model.DeviceInput) model.Response[model.DeviceData] {
	return do[model.DeviceData](ctx, c, http.MethodPut, resourcePath("/device", id), nil, in)
}

func (c *Client) DeviceCreateAuditReport(ctx context.Context, deviceID string, report map[string]any) model.Response[model.AuditReportData] {
	return do[model.AuditReportData](ctx, c, http.MethodPost, resourcePath("/device", deviceID, "audit-report"), nil, map[string]any{
		"report": report,
	})
}

func (c *Client) DeviceListAuditReports(ctx context.Context, deviceID string, opts model.ListOptions) model.Response[model.AuditReportsData] {
	return do[model.AuditReportsData](ctx, c, http.MethodGet, resourcePath("/device", deviceID, "audit-report"), listQuery(opts), nil)
}

// Service

func (c *Client) ServiceList(ctx context.Context, opts model.ListOptions) model.Response[model.ServicesData] {
	return do[model.ServicesData](ctx, c, http.MethodGet, "/service", listQuery(opts), nil)
}

func (c *Client) ServiceGet(ctx context.Context, id string) model.Response[model.ServiceData] {
	return do[model.ServiceData](ctx, c, http.MethodGet, resourcePath("/service", id), nil, nil)
}

func (c *Client) ServiceRegister(ctx context.Context, in model.ServiceInput) model.Response[model.ServiceData] {
	return do[model.ServiceData](ctx, c, http.MethodPost, "/service", nil, in)
}

func (c *Client) ServiceUpdate(ctx context.Context, id string, in model.ServiceInput) model.Response[model.ServiceData] {
	return do[model.ServiceData](ctx, c, http.MethodPut, resourcePath("/service", id), nil, in)
}

func (c *Client) ServiceLink(ctx context.Context, sourceID, targetID string) model.Response[model.Empty] {
	return do[model.Empty](ctx, c, http.MethodPut, resourcePath("/service", sourceID, "linked-service"), nil, map[string]string{
		"targetId": targetID,
	})
}

func (c *Client) ServiceUpdateConfig(ctx context.Context, id, cfg string) model.Response[model.Empty] {
	return do[model.Empty](ctx, c, http.MethodPut, resourcePath("/service", id, "config"), nil, map[string]string{
		"config": cfg,
	})
}

// Group

func (c *Client) GroupList(ctx context.Context, opts model.ListOptions) model.Response[model.GroupsData] {
	return do[model.GroupsData](ctx, c, http.MethodGet, "/group", listQuery(opts), nil)
}

func (c *Client) GroupGet(ctx context.Context, id string) model.Response[model.GroupData] {
	return do[model.GroupData](ctx, c, http.MethodGet, resourcePath("/group", id), nil, nil)
}

func (c *Client) GroupCreate(ctx context.Context, in model.GroupInput) model.Response[model.GroupData] {
	return do[model.GroupData](ctx, c, http.MethodPost, "/group", nil, in)
}

func (c *Client) GroupUpdate(ctx context.Context, id string, in model.GroupInput) model.Response[model.GroupData] {
	return do[model.GroupData](ctx, c, http.MethodPut, resourcePath("/group", id), nil, in)
}

func (c *Client) GroupDelete(ctx context.Context, id string) model.Response[model.Empty] {
	return do[model.Empty](ctx, c, http.MethodDelete, resourcePath("/group", id), nil, nil)
}

// Stream

func (c *Client) StreamList(ctx context.Context, opts model.ListOptions) model.Response[model.StreamsData] {
	return do[model.StreamsData](ctx, c, http.MethodGet, "/stream", listQuery(opts), nil)
}

func (c *Client) StreamGet(ctx context.Context, id string) model.Response[model.StreamData] {
	return do[model.StreamData](ctx, c, http.MethodGet, resourcePath("/stream", id), nil, nil)
}

func (c *Client) StreamCreate(ctx context.Context, in model.StreamInput) model.Response[model.StreamData] {
	return do[model.StreamData](ctx, c, http.MethodPost, "/stream", nil, in)
}

func (c *Client) StreamUpdate(ctx context.Context, id string, in model.StreamInput) model.Response[model.StreamData] {
	return do[model.StreamData](ctx, c, http.MethodPut, resourcePath("/stream", id), nil, in)
}

// Lease

func (c *Client) LeaseList(ctx context.Context, opts model.ListOptions) model.Response[model.LeasesData] {
	return do[model.LeasesData](ctx, c, http.MethodGet, "/lease", listQuery(opts), nil)
}

func (c *Client) LeaseCreate(ctx context.Context, in model.LeaseInput) model.Response[model.LeaseData] {
	return do[model.LeaseData](ctx, c, http.MethodPost, "/lease", nil, in)
}

func (c *Client) LeaseCancel(ctx context.Context, id string) model.Response[model.Empty] {
	return do[model.Empty](ctx, c, http.MethodPost, resourcePath("/lease", id, "cancel"), nil, nil)
}
