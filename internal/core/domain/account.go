package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies which capabilities an account's sessions are granted.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleAdmin
}

// ParseRole converts s to a Role. An empty string defaults to RoleGuest.
func ParseRole(s string) (Role, error) {
	if strings.TrimSpace(s) == "" {
		return RoleGuest, nil
	}
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: role must be one of: guest admin", ErrValidation)
	}
	return r, nil
}

// Account is a set of login credentials shared by one invited household.
// Role is fixed at creation; only Message (and the password) change later.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
