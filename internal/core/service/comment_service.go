package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

type CommentService struct {
	comments  ports.CommentRepository
	responses ports.ResponseRepository
	activity  ports.ActivityPublisher
	log       zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	responses ports.ResponseRepository,
	activity ports.ActivityPublisher,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, responses: responses, activity: activity, log: log}
}

// Add appends a comment for the guest's account. The message box only opens
// once at least one stored response on the account has accepted.
func (s *CommentService) Add(ctx context.Context, g session.Guest, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	stored, err := s.responses.ListByAccount(ctx, g.Username())
	if err != nil {
		return nil, err
	}
	unlocked := false
	for _, r := range stored {
		if r.IsAccepted() {
			unlocked = true
			break
		}
	}
	if !unlocked {
		return nil, domain.ErrCommentLocked
	}

	c, err := s.comments.Insert(ctx, &domain.Comment{
		Username:  g.Username(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", g.Username()).Int64("seq", c.Seq).Msg("comment added")
	s.activity.Publish(domain.Activity{
		Username:   g.Username(),
		Actor:      g.Username(),
		Kind:       domain.ActivityCommentAdded,
		OccurredAt: c.CreatedAt,
	})
	return c, nil
}

func (s *CommentService) ListForAccount(ctx context.Context, sess session.Session, username string) ([]domain.Comment, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	return s.comments.ListByAccount(ctx, username)
}

func (s *CommentService) ListAll(ctx context.Context, _ session.Admin) ([]domain.Comment, error) {
	return s.comments.ListAll(ctx)
}
