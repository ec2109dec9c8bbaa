package client

import (
	"context"
	"net/http"
)

type RegisterInput struct {
	UserName string `json:"user_name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the server's message.
func (c *Client) Register(ctx context.Context, input RegisterInput) (string, error) {
	var out struct {
		Message string `json:"message"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &out, false); err != nil {
		return "", err
	}

	return out.Message, nil
}

// Login authenticates and stores the bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out, false); err != nil {
		return err
	}

	return c.tokens.Set(out.Token)
}

// Logout discards the stored token.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Token exposes the stored bearer token, empty when logged out.
func (c *Client) Token() (string, error) {
	return c.tokens.Get()
}
