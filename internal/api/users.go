package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// ListUsers retrieves all user accounts
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/User", nil, true)
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := parseResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser retrieves a user by ID
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/User/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser creates a new user account
func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/User", user, true)
	if err != nil {
		return nil, err
	}

	var created domain.User
	if err := parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateUser updates an existing user account
func (c *Client) UpdateUser(ctx context.Context, id int64, user domain.User) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/User/%d", id), user, true)
	if err != nil {
		return nil, err
	}

	var updated domain.User
	if err := parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteUser deletes a user account by ID
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/User/%d", id), nil, true)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
