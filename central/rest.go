package central

import (
	"context"

	"github.com/kleeedolinux/central.go/model"
)

func (c *Client) AuthChangePassword(ctx context.Context, oldPassword, newPassword string) model.Response[model.Empty] {
	return c.http.AuthChangePassword(ctx, oldPassword, newPassword)
}

func (c *Client) UserMe(ctx context.Context) model.Response[model.UserData] {
	return c.http.UserMe(ctx)
}

func (c *Client) UserMyDevices(ctx context.Context) model.Response[model.DevicesData] {
	return c.http.UserMyDevices(ctx)
}

func (c *Client) UserMyServices(ctx context.Context) model.Response[model.ServicesData] {
	return c.http.UserMyServices(ctx)
}

func (c *Client) UserList(ctx context.Context, opts model.ListOptions) model.Response[model.UsersData] {
	return c.http.UserList(ctx, opts)
}

func (c *Client) UserGet(ctx context.Context, id string) model.Response[model.UserData] {
	return c.http.UserGet(ctx, id)
}

func (c *Client) UserRegister(ctx context.Context, in model.UserInput) model.Response[model.UserData] {
	return c.http.UserRegister(ctx, in)
}

func (c *Client) UserUpdate(ctx context.Context, id string, in model.UserInput) model.Response[model.UserData] {
	return c.http.UserUpdate(ctx, id, in)
}

func (c *Client) DeviceMe(ctx context.Context) model.Response[model.DeviceData] {
	return c.http.DeviceMe(ctx)
}

func (c *Client) DeviceMyServices(ctx context.Context) model.Response[model.ServicesData] {
	return c.http.DeviceMyServices(ctx)
}

func (c *Client) DeviceList(ctx context.Context, opts model.ListOptions) model.Response[model.DevicesData] {
	return c.http.DeviceList(ctx, opts)
}

func (c *Client) DeviceGet(ctx context.Context, id string) model.Response[model.DeviceData] {
	return c.http.DeviceGet(ctx, id)
}

func (c *Client) DeviceRegister(ctx context.Context, in model.DeviceInput) model.Response[model.DeviceData] {
	return c.http.DeviceRegister(ctx, in)
}

func (c *Client) DeviceUpdate(ctx context.Context, id string, in model.DeviceInput) model.Response[model.DeviceData] {
	return c.http.DeviceUpdate(ctx, id, in)
}

func (c *Client) DeviceCreateAuditReport(ctx context.Context, deviceID string, report map[string]any) model.Response[model.AuditReportData] {
	return c.http.DeviceCreateAuditReport(ctx, deviceID, report)
}

func (c *Client) DeviceListAuditReports(ctx context.Context, deviceID string, opts model.ListOptions) model.Response[model.AuditReportsData] {
	return c.http.DeviceListAuditReports(ctx, deviceID, opts)
}

func (c *Client) ServiceList(ctx context.Context, opts model.ListOptions) model.Response[model.ServicesData] {
	return c.http.ServiceList(ctx, opts)
}

func (c *Client) ServiceGet(ctx context.Context, id string) model.Response[model.ServiceData] {
	return c.http.ServiceGet(ctx, id)
}

func (c *Client) ServiceRegister(ctx context.Context, in model.ServiceInput) model.Response[model.ServiceData] {
	return c.http.ServiceRegister(ctx, in)
}

func (c *Client) ServiceUpdate(ctx context.Context, id string, in model.ServiceInput) model.Response[model.ServiceData] {
	return c.http.ServiceUpdate(ctx, id, in)
}

func (c *Client) ServiceLink(ctx context.Context, sourceID, targetID string) model.Response[model.Empty] {
	return c.http.ServiceLink(ctx, sourceID, targetID)
}

func (c *Client) ServiceUpdateConfig(ctx context.Context, id, cfg string) model.Response[model.Empty] {
	return c.http.ServiceUpdateConfig(ctx, id, cfg)
}

func (c *Client) GroupList(ctx context.Context, opts model.ListOptions) model.Response[model.GroupsData] {
	return c.http.GroupList(ctx, opts)
}

func (c *Client) GroupGet(ctx context.Context, id string) model.Response[model.GroupData] {
	return c.http.GroupGet(ctx, id)
}

func (c *Client) GroupCreate(ctx context.Context, in model.GroupInput) model.Response[model.GroupData] {
	return c.http.GroupCreate(ctx, in)
}

func (c *Client) GroupUpdate(ctx context.Context, id string, in model.GroupInput) model.Response[model.GroupData] {
	return c.http.GroupUpdate(ctx, id, in)
}

func (c *Client) GroupDelete(ctx context.Context, id string) model.Response[model.Empty] {
	return c.http.GroupDelete(ctx, id)
}

func (c *Client) StreamList(ctx context.Context, opts model.ListOptions) model.Response[model.StreamsData] {
	return c.http.StreamList(ctx, opts)
}

func (c *Client) StreamGet(ctx context.Context, id string) model.Response[model.StreamData] {
	return c.http.StreamGet(ctx, id)
}

func (c *Client) StreamCreate(ctx context.Context, in model.StreamInput) model.Response[model.StreamData] {
	return c.http.StreamCreate(ctx, in)
}

func (c *Client) StreamUpdate(ctx context.Context, id string, in model.StreamInput) model.Response[model.StreamData] {
	return c.http.StreamUpdate(ctx, id, in)
}

func (c *Client) LeaseList(ctx context.Context, opts model.ListOptions) model.Response[model.LeasesData] {
	return c.http.LeaseList(ctx, opts)
}

func (c *Client) LeaseCreate(ctx context.Context, in model.LeaseInput) model.Response[model.LeaseData] {
	return c.http.LeaseCreate(ctx, in)
}

func (c *Client) LeaseCancel(ctx context.Context, id string) model.Response[model.Empty] {
	return c.http.LeaseCancel(ctx, id)
}
