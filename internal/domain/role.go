package domain

import "fmt"

// Role represents a user's permission tier.
// This is a value object that enforces the canonical numeric role scheme
// used by the CRM backend.
type Role int

// Valid roles
const (
	RoleAdmin        Role = 1 // Full administrative access
	RoleStandardUser Role = 2 // Read and limited write access
	RoleDeveloper    Role = 3 // Full access for development accounts
)

// NewRole creates a new Role value object with validation
func NewRole(value int) (Role, error) {
	r := Role(value)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Validate checks if the role is valid
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStandardUser, RoleDeveloper:
		return nil
	default:
		return fmt.Errorf("invalid role %d: must be 1 (admin), 2 (user), or 3 (developer)", int(r))
	}
}

// String returns the human-readable role name
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleStandardUser:
		return "User"
	case RoleDeveloper:
		return "Developer"
	default:
		return "Unknown"
	}
}
