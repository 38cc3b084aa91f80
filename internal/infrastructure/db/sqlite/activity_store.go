package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

type ActivityStore struct {
	db *sql.DB
}

func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Insert(ctx context.Context, a *domain.Activity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (username, actor, kind, detail, occurred_at) VALUES (?, ?, ?, ?, ?)`,
		a.Username, a.Actor, string(a.Kind), a.Detail, a.OccurredAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List returns the newest entries first.
func (s *ActivityStore) List(ctx context.Context, f ports.ActivityFilter) ([]domain.Activity, error) {
	var (
		where []string
		args  []any
	)
	if f.Username != "" {
		where = append(where, "username = ?")
		args = append(args, f.Username)
	}
	query := `SELECT username, actor, kind, detail, occurred_at FROM activity_log`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY occurred_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	out := []domain.Activity{}
	for rows.Next() {
		var (
			a        domain.Activity
			kind     string
			occurred int64
		)
		if err := rows.Scan(&a.Username, &a.Actor, &kind, &a.Detail, &occurred); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Kind = domain.ActivityKind(kind)
		a.OccurredAt = unixToTime(occurred)
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ ports.ActivityRepository = (*ActivityStore)(nil)
