package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// ResponseRepository defines persistence for RSVP responses, keyed by
// (username, person_id).
type ResponseRepository interface {
	// Upsert inserts or overwrites the response for r.PersonID.
	Upsert(ctx context.Context, r *domain.RSVPResponse) error
	ListByAccount(ctx context.Context, username string) ([]domain.RSVPResponse, error)
	ListAll(ctx context.Context) ([]domain.RSVPResponse, error)
}
