package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

type CommentService interface {
	Add(ctx context.Context, g session.Guest, text string) (*domain.Comment, error)
	ListForAccount(ctx context.Context, s session.Session, username string) ([]domain.Comment, error)
	ListAll(ctx context.Context, a session.Admin) ([]domain.Comment, error)
}
