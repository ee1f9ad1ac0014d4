package domain

import "time"

// Customer represents a converted customer record
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ConvertedAt time.Time `json:"convertedAt"`
	UserID      int64     `json:"userId"`
}

// CustomerRequest carries the writable fields for creating or updating a customer
type CustomerRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ConvertedAt time.Time `json:"convertedAt"`
	UserID      int64     `json:"userId"`
}
