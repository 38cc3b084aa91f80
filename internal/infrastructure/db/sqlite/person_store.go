package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type PersonStore struct {
	db *sql.DB
}

func NewPersonStore(db *sql.DB) *PersonStore {
	return &PersonStore{db: db}
}

const personCols = `id, user_username, name_surname, created_at`

func scanPerson(scanner interface{ Scan(...any) error }) (*domain.InvitedPerson, error) {
	var (
		p       domain.InvitedPerson
		created int64
	)
	if err := scanner.Scan(&p.ID, &p.Username, &p.NameSurname, &created); err != nil {
		return nil, err
	}
	p.CreatedAt = unixToTime(created)
	return &p, nil
}

func (s *PersonStore) Create(ctx context.Context, p *domain.InvitedPerson) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invited_persons (`+personCols+`) VALUES (?, ?, ?, ?)`,
		p.ID, p.Username, p.NameSurname, p.CreatedAt.Unix(),
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrPersonExists
	case isForeignKeyViolation(err):
		return domain.ErrAccountNotFound
	}
	return fmt.Errorf("insert invited person: %w", err)
}

func (s *PersonStore) ListByAccount(ctx context.Context, username string) ([]domain.InvitedPerson, error) {
	return s.list(ctx, `SELECT `+personCols+` FROM invited_persons WHERE user_username = ? ORDER BY created_at, rowid`, username)
}

func (s *PersonStore) ListAll(ctx context.Context) ([]domain.InvitedPerson, error) {
	return s.list(ctx, `SELECT `+personCols+` FROM invited_persons ORDER BY user_username, created_at, rowid`)
}

func (s *PersonStore) list(ctx context.Context, query string, args ...any) ([]domain.InvitedPerson, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invited persons: %w", err)
	}
	defer rows.Close()

	out := []domain.InvitedPerson{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invited person: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *PersonStore) FindByName(ctx context.Context, username, name string) (*domain.InvitedPerson, error) {
	return s.get(ctx, `SELECT `+personCols+` FROM invited_persons WHERE user_username = ? AND name_surname = ?`, username, name)
}

func (s *PersonStore) FindByID(ctx context.Context, username, id string) (*domain.InvitedPerson, error) {
	return s.get(ctx, `SELECT `+personCols+` FROM invited_persons WHERE user_username = ? AND id = ?`, username, id)
}

func (s *PersonStore) get(ctx context.Context, query string, args ...any) (*domain.InvitedPerson, error) {
	p, err := scanPerson(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invited person: %w", err)
	}
	return p, nil
}

// DeleteByName removes the person. Its response goes with it through
// ON DELETE CASCADE.
func (s *PersonStore) DeleteByName(ctx context.Context, username, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invited_persons WHERE user_username = ? AND name_surname = ?`, username, name)
	if err != nil {
		return fmt.Errorf("delete invited person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}
