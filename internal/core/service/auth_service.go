package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// AuthService implements login, logout and the admin bootstrap.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	activity  ports.ActivityPublisher
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionStore,
	activity ports.ActivityPublisher,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		// Unknown usernames and bad passwords are indistinguishable to the caller.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	sid := uuid.NewString()
	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.generateToken(account, sid, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.Create(ctx, sid, account.Username, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	s.log.Info().Str("username", account.Username).Str("role", string(account.Role)).Msg("login")
	s.activity.Publish(domain.Activity{
		Username:   account.Username,
		Actor:      account.Username,
		Kind:       domain.ActivityLogin,
		OccurredAt: time.Now().UTC(),
	})

	return &ports.LoginResult{
		Token:     token,
		SessionID: sid,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sess session.Session) error {
	if sess == nil || sess.ID() == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, sess.ID()); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info().Str("username", sess.Username()).Msg("logout")
	return nil
}

// EnsureAdmin creates an admin account with the given credentials unless an
// account with that username already exists. Empty credentials are a no-op.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil
	}
	_, err := s.accounts.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.accounts.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !errors.Is(err, domain.ErrAccountExists) {
		return err
	}
	s.log.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}

func (s *AuthService) generateToken(account *domain.Account, sid string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"username": account.Username,
		"role":     string(account.Role),
		"jti":      sid,
		"exp":      expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
