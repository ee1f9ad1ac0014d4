package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// ListDeals retrieves all deals
func (c *Client) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	resp, err := c.do(ctx, http.MethodGet, "/Deal", nil, true)
	if err != nil {
		return nil, err
	}

	var deals []domain.Deal
	if err := parseResponse(resp, &deals); err != nil {
		return nil, err
	}

	return deals, nil
}

// GetDeal retrieves a deal by ID
func (c *Client) GetDeal(ctx context.Context, id int64) (*domain.Deal, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Deal/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	var deal domain.Deal
	if err := parseResponse(resp, &deal); err != nil {
		return nil, err
	}

	return &deal, nil
}

// CreateDeal creates a new deal
func (c *Client) CreateDeal(ctx context.Context, req domain.DealRequest) (*domain.Deal, error) {
	resp, err := c.do(ctx, http.MethodPost, "/Deal", req, true)
	if err != nil {
		return nil, err
	}

	var deal domain.Deal
	if err := parseResponse(resp, &deal); err != nil {
		return nil, err
	}

	return &deal, nil
}

// UpdateDeal updates an existing deal
func (c *Client) UpdateDeal(ctx context.Context, id int64, req domain.DealRequest) (*domain.Deal, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Deal/%d", id), req, true)
	if err != nil {
		return nil, err
	}

	var deal domain.Deal
	if err := parseResponse(resp, &deal); err != nil {
		return nil, err
	}

	return &deal, nil
}

// DeleteDeal deletes a deal by ID
func (c *Client) DeleteDeal(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/Deal/%d", id), nil, true)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
