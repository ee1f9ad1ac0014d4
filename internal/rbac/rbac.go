// Package rbac is the single place role comparisons happen. Views and
// commands consume the Permissions value instead of re-deriving role checks.
package rbac

import "github.com/vendalink/vendalink/internal/domain"

// Permissions is the set of UI affordances granted to a resolved user
type Permissions struct {
	// Mutate covers create, edit, and delete on CRM records, and the
	// password/role fields on the user-management screens
	Mutate bool
}

// ForUser computes the permissions for a resolved user. A nil user (not yet
// resolved, or not logged in) gets no rights; access is never granted
// optimistically before resolution completes.
func ForUser(user *domain.User) Permissions {
	if user == nil {
		return Permissions{}
	}
	return ForRole(user.Role)
}

// ForRole computes the permissions granted by a role. Admin and Developer
// hold mutation rights; StandardUser is read/limited-write only.
func ForRole(role domain.Role) Permissions {
	switch role {
	case domain.RoleAdmin, domain.RoleDeveloper:
		return Permissions{Mutate: true}
	default:
		return Permissions{}
	}
}
