package client

import (
	"context"
	"net/http"
	"time"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is the response from a successful login
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// User is the profile held by the user service
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Login authenticates a user with the user service. On success the access
// token from the response is stored as the session credential, both in memory
// and in the persistent store.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	var token Token
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodPost,
		path:    "/auth/login",
		body: LoginRequest{
			Username: username,
			Password: password,
		},
	}, &token)
	if err != nil {
		return nil, err
	}

	if err := c.session.Set(token.AccessToken); err != nil {
		return nil, NewInternalError(err, "storing session credential")
	}

	return &token, nil
}

// Register creates a new account with the user service.
// Registration does not itself establish a session - callers log in
// explicitly afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodPost,
		path:    "/auth/register",
		body:    req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the profile of the currently-credentialed user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodGet,
		path:    "/profile",
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the profile of the currently-credentialed user.
func (c *Client) UpdateProfile(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	err := c.do(ctx, request{
		service: ServiceUser,
		method:  http.MethodPut,
		path:    "/profile",
		body:    req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the in-memory and persisted credential.
// Pure local side effect, no network call.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// RestoreSession validates a credential restored from the persistent store by
// fetching the current user. A failed lookup means the session is no longer
// valid: the credential is cleared locally and no error is surfaced.
func (c *Client) RestoreSession(ctx context.Context) (*User, bool) {
	if !c.session.IsAuthenticated() {
		return nil, false
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		_ = c.session.Clear()
		return nil, false
	}

	return user, true
}
