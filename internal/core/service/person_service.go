package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// PersonService resolves rosters and manages invited persons.
type PersonService struct {
	accounts ports.AccountRepository
	persons  ports.PersonRepository
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewPersonService(
	accounts ports.AccountRepository,
	persons ports.PersonRepository,
	activity ports.ActivityPublisher,
	log zerolog.Logger,
) *PersonService {
	return &PersonService{accounts: accounts, persons: persons, activity: activity, log: log}
}

// Roster returns the invited persons owned by the guest's account, or
// ErrAccountNotFound if the account no longer exists.
func (s *PersonService) Roster(ctx context.Context, g session.Guest) ([]domain.InvitedPerson, error) {
	return s.roster(ctx, g.Username())
}

func (s *PersonService) ListForAccount(ctx context.Context, sess session.Session, username string) ([]domain.InvitedPerson, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	return s.roster(ctx, username)
}

func (s *PersonService) roster(ctx context.Context, username string) ([]domain.InvitedPerson, error) {
	if _, err := s.accounts.FindByUsername(ctx, username); err != nil {
		return nil, err
	}
	persons, err := s.persons.ListByAccount(ctx, username)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons = []domain.InvitedPerson{}
	}
	return persons, nil
}

func (s *PersonService) ListAll(ctx context.Context, _ session.Admin) ([]domain.InvitedPerson, error) {
	return s.persons.ListAll(ctx)
}

// Add puts a person on an account's roster. Admins may add to any account,
// guests only to their own. A blank name is silently ignored.
func (s *PersonService) Add(ctx context.Context, sess session.Session, username, nameSurname string) (*domain.InvitedPerson, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(nameSurname)
	if name == "" {
		return nil, nil
	}
	if _, err := s.accounts.FindByUsername(ctx, username); err != nil {
		return nil, err
	}

	p := &domain.InvitedPerson{
		ID:          uuid.NewString(),
		Username:    username,
		NameSurname: name,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.persons.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("person_id", p.ID).Str("actor", sess.Username()).Msg("invited person added")
	s.activity.Publish(domain.Activity{
		Username:   username,
		Actor:      sess.Username(),
		Kind:       domain.ActivityPersonAdded,
		Detail:     name,
		OccurredAt: p.CreatedAt,
	})
	return p, nil
}

// Delete removes a person, matched by exact name within the account, and
// its response. The caller must pass confirmed=true after asking the user.
func (s *PersonService) Delete(ctx context.Context, admin session.Admin, username, nameSurname string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if _, err := s.persons.FindByName(ctx, username, nameSurname); err != nil {
		return err
	}
	if err := s.persons.DeleteByName(ctx, username, nameSurname); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Str("name_surname", nameSurname).Str("actor", admin.Username()).Msg("invited person deleted")
	s.activity.Publish(domain.Activity{
		Username:   username,
		Actor:      admin.Username(),
		Kind:       domain.ActivityPersonDeleted,
		Detail:     nameSurname,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}
