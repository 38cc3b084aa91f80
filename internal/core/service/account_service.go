package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

type AccountService struct {
	repo     ports.AccountRepository
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, activity ports.ActivityPublisher, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, activity: activity, log: log}
}

// Get returns an account. Guests may only fetch their own.
func (s *AccountService) Get(ctx context.Context, sess session.Session, username string) (*domain.Account, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByUsername(ctx, username)
}

func (s *AccountService) List(ctx context.Context, _ session.Admin) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

// Create validates and stores a new account. Whitespace-only usernames or
// passwords are rejected; the username is stored trimmed.
func (s *AccountService) Create(ctx context.Context, admin session.Admin, in ports.CreateAccountInput) (*domain.Account, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Message:      in.Message,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", string(role)).Str("actor", admin.Username()).Msg("account created")
	s.publish(admin, username, domain.ActivityAccountCreated, string(role))
	return created, nil
}

// Update overwrites the account message and optionally resets the password.
// The previous message is not kept.
func (s *AccountService) Update(ctx context.Context, admin session.Admin, username string, in ports.UpdateAccountInput) (*domain.Account, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return nil, err
	}

	var hash []byte
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, fmt.Errorf("%w: password must not be blank", domain.ErrValidation)
		}
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if in.Message != nil {
		if err := s.repo.UpdateMessage(ctx, username, *in.Message, now); err != nil {
			return nil, err
		}
	}
	if hash != nil {
		if err := s.repo.UpdatePassword(ctx, username, string(hash), now); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("username", username).Str("actor", admin.Username()).Msg("account updated")
	s.publish(admin, username, domain.ActivityAccountUpdated, "")
	return s.repo.FindByUsername(ctx, username)
}

// Delete removes the account and everything it owns. The caller must pass
// confirmed=true after asking the user.
func (s *AccountService) Delete(ctx context.Context, admin session.Admin, username string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Str("actor", admin.Username()).Msg("account deleted")
	s.publish(admin, username, domain.ActivityAccountDeleted, "")
	return nil
}

func (s *AccountService) publish(admin session.Admin, username string, kind domain.ActivityKind, detail string) {
	s.activity.Publish(domain.Activity{
		Username:   username,
		Actor:      admin.Username(),
		Kind:       kind,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
}
