package domain

import (
	"fmt"
	"strings"
)

// UserRole is the back-office role of a staff account.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// ParseUserRole parses a role value received at a boundary. Role updates
// accept only the closed set; anything else is rejected early.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(s)) {
	case RoleAdmin, RoleStaff:
		return UserRole(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown user role %q", ErrValidation, s)
}

func (r UserRole) String() string { return string(r) }
