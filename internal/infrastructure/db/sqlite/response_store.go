package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type ResponseStore struct {
	db *sql.DB
}

func NewResponseStore(db *sql.DB) *ResponseStore {
	return &ResponseStore{db: db}
}

const responseCols = `person_id, user_username, name_surname, accepted, menu_option, allergies, comment, updated_at`

func scanResponse(scanner interface{ Scan(...any) error }) (*domain.RSVPResponse, error) {
	var (
		r        domain.RSVPResponse
		accepted sql.NullBool
		menu     string
		updated  int64
	)
	err := scanner.Scan(&r.PersonID, &r.Username, &r.NameSurname, &accepted, &menu, &r.Allergies, &r.Comment, &updated)
	if err != nil {
		return nil, err
	}
	if accepted.Valid {
		r.Accepted = domain.Bool(accepted.Bool)
	}
	r.MenuOption = domain.MenuOption(menu)
	r.UpdatedAt = unixToTime(updated)
	return &r, nil
}

// Upsert replaces the response stored for (account, person).
func (s *ResponseStore) Upsert(ctx context.Context, r *domain.RSVPResponse) error {
	var accepted sql.NullBool
	if r.Accepted != nil {
		accepted = sql.NullBool{Bool: *r.Accepted, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rsvp_responses (`+responseCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_username, person_id) DO UPDATE SET
			name_surname = excluded.name_surname,
			accepted = excluded.accepted,
			menu_option = excluded.menu_option,
			allergies = excluded.allergies,
			comment = excluded.comment,
			updated_at = excluded.updated_at`,
		r.PersonID, r.Username, r.NameSurname, accepted, string(r.MenuOption), r.Allergies, r.Comment, r.UpdatedAt.Unix(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPersonNotFound
		}
		return fmt.Errorf("upsert response: %w", err)
	}
	return nil
}

func (s *ResponseStore) ListByAccount(ctx context.Context, username string) ([]domain.RSVPResponse, error) {
	return s.list(ctx, `SELECT `+responseCols+` FROM rsvp_responses WHERE user_username = ? ORDER BY name_surname`, username)
}

func (s *ResponseStore) ListAll(ctx context.Context) ([]domain.RSVPResponse, error) {
	return s.list(ctx, `SELECT `+responseCols+` FROM rsvp_responses ORDER BY user_username, name_surname`)
}

func (s *ResponseStore) list(ctx context.Context, query string, args ...any) ([]domain.RSVPResponse, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	out := []domain.RSVPResponse{}
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}
