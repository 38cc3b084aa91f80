package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one entry. It is called from dispatcher workers, never
// from a request goroutine.
func (s *activityService) Record(ctx context.Context, a domain.Activity) error {
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, &a); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	s.log.Debug().Str("username", a.Username).Str("kind", string(a.Kind)).Msg("activity recorded")
	return nil
}

func (s *activityService) List(ctx context.Context, _ session.Admin, filter ports.ActivityFilter) ([]domain.Activity, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultActivityLimit
	case filter.Limit > maxActivityLimit:
		filter.Limit = maxActivityLimit
	}
	return s.repo.List(ctx, filter)
}
