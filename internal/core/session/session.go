// Package session models the authenticated actor of a request.
//
// A Session is either a Guest or an Admin. Operations that need a capability
// take the concrete variant as a parameter, so the role is checked once at
// the boundary (see AsGuest and AsAdmin) and never re-derived downstream.
package session

import (
	"fmt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// Session is implemented only by Guest and Admin.
type Session interface {
	Username() string
	Role() domain.Role
	// ID is the server-side session identifier, empty for ad-hoc sessions.
	ID() string
	sealed()
}

// Guest may read its own roster and submit responses and comments for it.
type Guest struct {
	username string
	id       string
}

// Admin may manage accounts and invited persons and read all responses.
type Admin struct {
	username string
	id       string
}

func NewGuest(username, id string) Guest { return Guest{username: username, id: id} }
func NewAdmin(username, id string) Admin { return Admin{username: username, id: id} }

func (g Guest) Username() string  { return g.username }
func (g Guest) Role() domain.Role { return domain.RoleGuest }
func (g Guest) ID() string        { return g.id }
func (Guest) sealed()             {}

func (a Admin) Username() string  { return a.username }
func (a Admin) Role() domain.Role { return domain.RoleAdmin }
func (a Admin) ID() string        { return a.id }
func (Admin) sealed()             {}

// New builds the variant matching role.
func New(role domain.Role, username, id string) (Session, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: session without username", domain.ErrInvalidCredentials)
	}
	switch role {
	case domain.RoleGuest:
		return NewGuest(username, id), nil
	case domain.RoleAdmin:
		return NewAdmin(username, id), nil
	}
	return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidCredentials, role)
}

// AsGuest narrows s to a Guest or fails with ErrForbidden.
func AsGuest(s Session) (Guest, error) {
	g, ok := s.(Guest)
	if !ok {
		return Guest{}, domain.ErrForbidden
	}
	return g, nil
}

// AsAdmin narrows s to an Admin or fails with ErrForbidden.
func AsAdmin(s Session) (Admin, error) {
	a, ok := s.(Admin)
	if !ok {
		return Admin{}, domain.ErrForbidden
	}
	return a, nil
}

// CanAccess reports whether s may read data owned by username. Admins may
// read any account; guests only their own.
func CanAccess(s Session, username string) bool {
	switch v := s.(type) {
	case Admin:
		return true
	case Guest:
		return v.username == username
	}
	return false
}
