package socket

import "github.com/kleeedolinux/central.go/model"

func (c *Client) GroupOnUpdate(fn func(group model.Group)) Unsubscribe {
	return subscribe(c, c.events.GroupUpdated, true, func(p struct {
		Group model.Group `json:"group"`
	}) {
		fn(p.Group)
	})
}

func (c *Client) UserOnUpdate(fn func(user model.User)) Unsubscribe {
	return subscribe(c, c.events.UserUpdated, true, func(p struct {
		User model.User `json:"user"`
	}) {
		fn(p.User)
	})
}
