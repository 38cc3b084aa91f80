package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// PersonRepository defines persistence for invited persons.
type PersonRepository interface {
	// Create inserts a person; ErrPersonExists if the account already has
	// someone with the same name.
	Create(ctx context.Context, p *domain.InvitedPerson) error
	// ListByAccount returns the account's roster in creation order.
	ListByAccount(ctx context.Context, username string) ([]domain.InvitedPerson, error)
	ListAll(ctx context.Context) ([]domain.InvitedPerson, error)
	FindByName(ctx context.Context, username, nameSurname string) (*domain.InvitedPerson, error)
	FindByID(ctx context.Context, username, id string) (*domain.InvitedPerson, error)
	// DeleteByName removes the person and its response.
	DeleteByName(ctx context.Context, username, nameSurname string) error
}
