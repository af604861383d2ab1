package client

import (
	"context"
	"fmt"
	"net/http"
)

type UpdateUserRequest struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password,omitempty"`
}

// GetUser fetches a user profile by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/users/%d", id),
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user profile by id. Empty fields are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, id int, req UpdateUserRequest) (*User, error) {
	var user User
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodPut,
		path:    fmt.Sprintf("/users/%d", id),
		body:    req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
