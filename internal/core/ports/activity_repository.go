package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// ActivityFilter narrows an activity log query.
type ActivityFilter struct {
	Username string // empty = all accounts
	Limit    int    // capped by the service
}

// ActivityRepository stores the audit trail of state changes.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// List returns entries newest first.
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
}

// ActivityPublisher hands activity entries to the background recorder.
// Publish must not block the caller.
type ActivityPublisher interface {
	Publish(a domain.Activity)
}
