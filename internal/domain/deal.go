package domain

import (
	"fmt"
	"time"
)

// DealStage represents where a deal sits in the sales pipeline.
// This is a value object that enforces the canonical string-keyed scheme
// used by the CRM backend.
type DealStage string

// Valid deal stages
const (
	DealStageNew          DealStage = "New"
	DealStageNegotiation  DealStage = "Negotiation"
	DealStageProposalSent DealStage = "ProposalSent"
	DealStageClosedWon    DealStage = "ClosedWon"
	DealStageClosedLost   DealStage = "ClosedLost"
)

// NewDealStage creates a new DealStage value object with validation
func NewDealStage(value string) (DealStage, error) {
	s := DealStage(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks if the deal stage is valid
func (s DealStage) Validate() error {
	switch s {
	case DealStageNew, DealStageNegotiation, DealStageProposalSent, DealStageClosedWon, DealStageClosedLost:
		return nil
	default:
		return fmt.Errorf("invalid deal stage %q: must be New, Negotiation, ProposalSent, ClosedWon, or ClosedLost", string(s))
	}
}

// String returns the string representation
func (s DealStage) String() string {
	return string(s)
}

// IsClosed reports whether the deal has reached a terminal stage
func (s DealStage) IsClosed() bool {
	return s == DealStageClosedWon || s == DealStageClosedLost
}

// Deal represents a sales opportunity tied to a customer and originating lead
type Deal struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Value      float64   `json:"value"`
	Stage      DealStage `json:"stage"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID int64     `json:"customerId"`
	Customer   *Customer `json:"customer,omitempty"`
	LeadID     int64     `json:"leadId,omitempty"`
	Lead       *Lead     `json:"lead,omitempty"`
}

// DealRequest carries the writable fields for creating or updating a deal
type DealRequest struct {
	Title      string    `json:"title"`
	Value      float64   `json:"value"`
	Stage      DealStage `json:"stage"`
	CustomerID int64     `json:"customerId"`
	LeadID     int64     `json:"leadId,omitempty"`
}
