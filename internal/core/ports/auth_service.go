package ports

import (
	"context"
	"time"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	Account   *domain.Account
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, s session.Session) error
	// EnsureAdmin creates the bootstrap admin account when it is missing.
	EnsureAdmin(ctx context.Context, username, password string) error
}
