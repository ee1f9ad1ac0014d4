package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vendalink/vendalink/internal/domain"
)

// ListCustomers retrieves all customers
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	resp, err := c.do(ctx, http.MethodGet, "/Customer", nil, true)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	if err := parseResponse(resp, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomer retrieves a customer by ID
func (c *Client) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Customer/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := parseResponse(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

// CreateCustomer creates a new customer
func (c *Client) CreateCustomer(ctx context.Context, req domain.CustomerRequest) (*domain.Customer, error) {
	resp, err := c.do(ctx, http.MethodPost, "/Customer", req, true)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := parseResponse(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

// UpdateCustomer updates an existing customer
func (c *Client) UpdateCustomer(ctx context.Context, id int64, req domain.CustomerRequest) (*domain.Customer, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Customer/%d", id), req, true)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := parseResponse(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer deletes a customer by ID
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/Customer/%d", id), nil, true)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
