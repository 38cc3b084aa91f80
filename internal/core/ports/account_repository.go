package ports

import (
	"context"
	"time"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// AccountRepository defines persistence for accounts.
type AccountRepository interface {
	// Create inserts a new account; ErrAccountExists on a duplicate username.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// FindByUsername returns ErrAccountNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateMessage(ctx context.Context, username, message string, at time.Time) error
	UpdatePassword(ctx context.Context, username, passwordHash string, at time.Time) error
	// Delete removes the account and, in cascade, its invited persons,
	// responses and comments.
	Delete(ctx context.Context, username string) error
}
