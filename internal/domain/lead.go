package domain

import (
	"fmt"
	"time"
)

// LeadStatus represents where a lead sits in the qualification funnel.
// This is a value object that enforces the canonical string-keyed scheme
// used by the CRM backend.
type LeadStatus string

// Valid lead statuses
const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusLost      LeadStatus = "Lost"
	LeadStatusConverted LeadStatus = "Converted"
)

// NewLeadStatus creates a new LeadStatus value object with validation
func NewLeadStatus(value string) (LeadStatus, error) {
	s := LeadStatus(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks if the lead status is valid
func (s LeadStatus) Validate() error {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost, LeadStatusConverted:
		return nil
	default:
		return fmt.Errorf("invalid lead status %q: must be New, Contacted, Qualified, Lost, or Converted", string(s))
	}
}

// String returns the string representation
func (s LeadStatus) String() string {
	return string(s)
}

// LeadSource identifies where a lead came from. The backend accepts free-form
// values; these constants cover the known acquisition channels.
type LeadSource string

// Known lead sources
const (
	LeadSourceReferral    LeadSource = "Referral"
	LeadSourceWebsite     LeadSource = "Website"
	LeadSourceSocialMedia LeadSource = "SocialMedia"
	LeadSourceEmail       LeadSource = "Email"
	LeadSourceColdCall    LeadSource = "ColdCall"
	LeadSourceEvent       LeadSource = "Event"
	LeadSourceAds         LeadSource = "Ads"
	LeadSourceInbound     LeadSource = "Inbound"
	LeadSourceOther       LeadSource = "Other"
)

// Lead represents a potential customer being worked by a user
type Lead struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Source     LeadSource `json:"source,omitempty"`
	Status     LeadStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UserID     int64      `json:"userId"`
	User       *User      `json:"user,omitempty"`
	CustomerID int64      `json:"customerId,omitempty"`
	Customer   *Customer  `json:"customer,omitempty"`
}

// LeadRequest carries the writable fields for creating or updating a lead
type LeadRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Source     LeadSource `json:"source,omitempty"`
	Status     LeadStatus `json:"status"`
	UserID     int64      `json:"userId"`
	CustomerID int64      `json:"customerId,omitempty"`
}
