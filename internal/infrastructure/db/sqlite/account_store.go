package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

const accountCols = `username, password_hash, role, personal_message, created_at, updated_at`

func scanAccount(scanner interface{ Scan(...any) error }) (*domain.Account, error) {
	var (
		a                domain.Account
		role             string
		created, updated int64
	)
	if err := scanner.Scan(&a.Username, &a.PasswordHash, &role, &a.Message, &created, &updated); err != nil {
		return nil, err
	}
	a.Role = domain.Role(role)
	a.CreatedAt = unixToTime(created)
	a.UpdatedAt = unixToTime(updated)
	return &a, nil
}

func (s *AccountStore) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountCols+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.Username, a.PasswordHash, string(a.Role), a.Message, a.CreatedAt.Unix(), a.UpdatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return s.FindByUsername(ctx, a.Username)
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+accountCols+` FROM accounts WHERE username = ?`, username)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (s *AccountStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+accountCols+` FROM accounts ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	out := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *AccountStore) UpdateMessage(ctx context.Context, username, message string, at time.Time) error {
	return s.update(ctx, `UPDATE accounts SET personal_message = ?, updated_at = ? WHERE username = ?`, message, at.Unix(), username)
}

func (s *AccountStore) UpdatePassword(ctx context.Context, username, hash string, at time.Time) error {
	return s.update(ctx, `UPDATE accounts SET password_hash = ?, updated_at = ? WHERE username = ?`, hash, at.Unix(), username)
}

func (s *AccountStore) update(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete removes the account. Persons, responses and comments go with it
// through ON DELETE CASCADE.
func (s *AccountStore) Delete(ctx context.Context, username string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
