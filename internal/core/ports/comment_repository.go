package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// CommentRepository defines append-only persistence for comments. List
// methods return comments in submission order.
type CommentRepository interface {
	Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByAccount(ctx context.Context, username string) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
}
