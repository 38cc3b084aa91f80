package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type CommentStore struct {
	db *sql.DB
}

func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentCols = `seq, user_username, comment, created_at`

func (s *CommentStore) Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO guest_comments (user_username, comment, created_at) VALUES (?, ?, ?)`,
		c.Username, c.Text, c.CreatedAt.Unix(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	saved := *c
	saved.Seq = seq
	return &saved, nil
}

func (s *CommentStore) ListByAccount(ctx context.Context, username string) ([]domain.Comment, error) {
	return s.list(ctx, `SELECT `+commentCols+` FROM guest_comments WHERE user_username = ? ORDER BY seq`, username)
}

func (s *CommentStore) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return s.list(ctx, `SELECT `+commentCols+` FROM guest_comments ORDER BY seq`)
}

func (s *CommentStore) list(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		var (
			c       domain.Comment
			created int64
		)
		if err := rows.Scan(&c.Seq, &c.Username, &c.Text, &created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.CreatedAt = unixToTime(created)
		out = append(out, c)
	}
	return out, rows.Err()
}
