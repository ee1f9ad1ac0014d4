package api

import (
	"context"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// GetDashboard retrieves the overview aggregate (deals, leads, interactions,
// customers) in one call
func (c *Client) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	resp, err := c.do(ctx, http.MethodGet, "/Dashboard", nil, true)
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard
	if err := parseResponse(resp, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}
