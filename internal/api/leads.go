package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// ListLeads retrieves all leads
func (c *Client) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	resp, err := c.do(ctx, http.MethodGet, "/Lead", nil, true)
	if err != nil {
		return nil, err
	}

	var leads []domain.Lead
	if err := parseResponse(resp, &leads); err != nil {
		return nil, err
	}

	return leads, nil
}

// GetLead retrieves a lead by ID
func (c *Client) GetLead(ctx context.Context, id int64) (*domain.Lead, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Lead/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	var lead domain.Lead
	if err := parseResponse(resp, &lead); err != nil {
		return nil, err
	}

	return &lead, nil
}

// CreateLead creates a new lead
func (c *Client) CreateLead(ctx context.Context, req domain.LeadRequest) (*domain.Lead, error) {
	resp, err := c.do(ctx, http.MethodPost, "/Lead", req, true)
	if err != nil {
		return nil, err
	}

	var lead domain.Lead
	if err := parseResponse(resp, &lead); err != nil {
		return nil, err
	}

	return &lead, nil
}

// UpdateLead updates an existing lead
func (c *Client) UpdateLead(ctx context.Context, id int64, req domain.LeadRequest) (*domain.Lead, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Lead/%d", id), req, true)
	if err != nil {
		return nil, err
	}

	var lead domain.Lead
	if err := parseResponse(resp, &lead); err != nil {
		return nil, err
	}

	return &lead, nil
}

// DeleteLead deletes a lead by ID
func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/Lead/%d", id), nil, true)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
