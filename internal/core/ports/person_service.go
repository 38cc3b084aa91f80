package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// PersonService resolves guest rosters and manages invited persons.
type PersonService interface {
	// Roster returns the guest's own invited persons in creation order.
	Roster(ctx context.Context, g session.Guest) ([]domain.InvitedPerson, error)
	// ListForAccount returns any account's roster to an admin, or the
	// caller's own roster to a guest.
	ListForAccount(ctx context.Context, s session.Session, username string) ([]domain.InvitedPerson, error)
	ListAll(ctx context.Context, a session.Admin) ([]domain.InvitedPerson, error)
	// Add returns (nil, nil) when nameSurname is blank.
	Add(ctx context.Context, s session.Session, username, nameSurname string) (*domain.InvitedPerson, error)
	Delete(ctx context.Context, a session.Admin, username, nameSurname string, confirmed bool) error
}
