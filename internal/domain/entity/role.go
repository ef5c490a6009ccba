package entity

import "strings"

// Role represents the access level a user holds in the system.
type Role string

const (
	// RoleUser is the fallback role for identities without a stored record.
	RoleUser Role = "user"
	// RoleEmployee is assigned on self-registration.
	RoleEmployee Role = "employee"
	// RoleHR is granted through an approved HR application.
	RoleHR Role = "hr"
	// RoleAdmin may change other users' roles.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleHR, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole trims surrounding whitespace and returns the matching Role.
// Role comparisons are always done on exact, trimmed values.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.TrimSpace(s))

	return role, role.IsValid()
}
