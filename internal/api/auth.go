package api

import (
	"context"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// Login authenticates with email and password. The call is anonymous by
// construction: no bearer token is attached even if a stale one is cached.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	req := domain.LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.do(ctx, http.MethodPost, "/User/login", req, false)
	if err != nil {
		return nil, err
	}

	var auth domain.AuthResponse
	if err := parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Register creates a new user account and returns the resulting session
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.AuthResponse, error) {
	req := domain.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	resp, err := c.do(ctx, http.MethodPost, "/User/register", req, false)
	if err != nil {
		return nil, err
	}

	var auth domain.AuthResponse
	if err := parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Me resolves the user that owns the current bearer token. This is the
// identity-check endpoint the session store uses to validate a persisted
// token before trusting it.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/User/me", nil, true)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ForgotPassword asks the backend to start a password reset for the email
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	req := domain.ForgotPasswordRequest{Email: email}

	resp, err := c.do(ctx, http.MethodPost, "/User/forgot-password", req, false)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ResetPassword completes a password reset with the emailed code
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	req := domain.ResetPasswordRequest{
		Email:       email,
		Code:        code,
		NewPassword: newPassword,
	}

	resp, err := c.do(ctx, http.MethodPost, "/User/reset-password", req, false)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
