package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// ListInteractions retrieves all interactions
func (c *Client) ListInteractions(ctx context.Context) ([]domain.Interaction, error) {
	resp, err := c.do(ctx, http.MethodGet, "/Interaction", nil, true)
	if err != nil {
		return nil, err
	}

	var interactions []domain.Interaction
	if err := parseResponse(resp, &interactions); err != nil {
		return nil, err
	}

	return interactions, nil
}

// GetInteraction retrieves an interaction by ID
func (c *Client) GetInteraction(ctx context.Context, id int64) (*domain.Interaction, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Interaction/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	var interaction domain.Interaction
	if err := parseResponse(resp, &interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// CreateInteraction creates a new interaction
func (c *Client) CreateInteraction(ctx context.Context, req domain.InteractionRequest) (*domain.Interaction, error) {
	resp, err := c.do(ctx, http.MethodPost, "/Interaction", req, true)
	if err != nil {
		return nil, err
	}

	var interaction domain.Interaction
	if err := parseResponse(resp, &interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// UpdateInteraction updates an existing interaction
func (c *Client) UpdateInteraction(ctx context.Context, id int64, req domain.InteractionRequest) (*domain.Interaction, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Interaction/%d", id), req, true)
	if err != nil {
		return nil, err
	}

	var interaction domain.Interaction
	if err := parseResponse(resp, &interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// DeleteInteraction deletes an interaction by ID
func (c *Client) DeleteInteraction(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/Interaction/%d", id), nil, true)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
