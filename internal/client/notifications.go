package client

import (
	"context"
	"fmt"
	"net/http"
)

// Notification is a message delivered to a user over one channel
type Notification struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
	Type    string `json:"type"` // e.g. "email", "sms"
}

// SendNotification queues a notification for delivery.
func (c *Client) SendNotification(ctx context.Context, notification Notification) error {
	return c.do(ctx, request{
		service: ServiceNotification,
		method:  http.MethodPost,
		path:    "/notifications",
		body:    notification,
	}, nil)
}

// ListNotifications returns the notifications sent to a user.
func (c *Client) ListNotifications(ctx context.Context, userID int) ([]Notification, error) {
	var notifications []Notification
	err := c.do(ctx, request{
		service: ServiceNotification,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/notifications/%d", userID),
	}, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
