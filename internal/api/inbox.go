package api

import (
	"context"
	"net/url"
)

// ListInbox lists notifications. With all=false only unread ones are returned.
func (c *Client) ListInbox(ctx context.Context, all bool) ([]Notification, error) {
	status := "unread"
	if all {
		status = ""
	}
	var items []Notification
	if err := c.Get(ctx, "/inbox", url.Values{"status": {status}}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RecentInbox returns up to the 100 most recent notifications, read or not.
func (c *Client) RecentInbox(ctx context.Context) ([]Notification, error) {
	q := url.Values{"limit": {"100"}, "all": {"true"}}
	var items []Notification
	if err := c.Get(ctx, "/inbox", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.Post(ctx, "/inbox/"+seg(id)+"/read", nil, nil)
}

// MarkAllRead marks every notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.Post(ctx, "/inbox/read-all", nil, nil)
}
