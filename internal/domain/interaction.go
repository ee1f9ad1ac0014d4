package domain

import "time"

// Interaction represents a logged touchpoint with a lead or customer
// (a call, meeting, email, and so on). Exactly one of LeadID or CustomerID
// is normally set; the backend tolerates both.
type Interaction struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Notes        string    `json:"notes,omitempty"`
	Date         time.Time `json:"date"`
	LeadID       int64     `json:"leadId,omitempty"`
	LeadName     string    `json:"leadName,omitempty"`
	CustomerID   int64     `json:"customerId,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
}

// InteractionRequest carries the writable fields for creating or updating an interaction
type InteractionRequest struct {
	Type       string    `json:"type"`
	Notes      string    `json:"notes,omitempty"`
	Date       time.Time `json:"date"`
	LeadID     int64     `json:"leadId,omitempty"`
	CustomerID int64     `json:"customerId,omitempty"`
}
