package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// ActivityRecorder persists a single activity entry. It is what the
// background dispatcher workers call.
type ActivityRecorder interface {
	Record(ctx context.Context, a domain.Activity) error
}

type ActivityService interface {
	ActivityRecorder
	List(ctx context.Context, a session.Admin, filter ActivityFilter) ([]domain.Activity, error)
}
