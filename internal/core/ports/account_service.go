package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// CreateAccountInput carries the fields for a new account.
type CreateAccountInput struct {
	Username string
	Password string
	Role     string // empty = guest
	Message  string
}

// UpdateAccountInput carries optional changes; nil fields are left alone.
type UpdateAccountInput struct {
	Message  *string
	Password *string
}

// AccountService is the admin account-management use case. Get is also
// open to a guest for its own account.
type AccountService interface {
	Get(ctx context.Context, s session.Session, username string) (*domain.Account, error)
	List(ctx context.Context, a session.Admin) ([]domain.Account, error)
	Create(ctx context.Context, a session.Admin, in CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, a session.Admin, username string, in UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, a session.Admin, username string, confirmed bool) error
}
