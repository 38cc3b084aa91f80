package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

func newAuthFixture(t *testing.T) (*fixture, *AuthService) {
	t.Helper()
	f := newFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	f.db.accounts["dora123"] = &domain.Account{Username: "dora123", PasswordHash: string(hash), Role: domain.RoleGuest, Message: "Dobrodošli!"}
	svc := NewAuthService(f.accounts, f.sessions, f.pub, "secret", time.Hour, zerolog.Nop())
	return f, svc
}

func TestAuthService_Login_Success(t *testing.T) {
	f, svc := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "dora123", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" || res.SessionID == "" {
		t.Fatalf("expected token and session id, got %+v", res)
	}
	if res.Account.Username != "dora123" || res.Account.Role != domain.RoleGuest {
		t.Fatalf("unexpected account: %+v", res.Account)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleGuest) || claims["username"] != "dora123" || claims["jti"] != res.SessionID {
		t.Fatalf("unexpected claims: %v", claims)
	}

	if ok, _ := f.sessions.Exists(context.Background(), res.SessionID); !ok {
		t.Fatalf("session was not registered")
	}
	if kinds := f.pub.kinds(); len(kinds) != 1 || kinds[0] != domain.ActivityLogin {
		t.Fatalf("expected login activity, got %v", kinds)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "dora123", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "  ", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_SessionStoreDown(t *testing.T) {
	f, svc := newAuthFixture(t)
	f.sessions.createErr = errors.New("redis down")

	if _, err := svc.Login(context.Background(), "dora123", "s3cret"); err == nil {
		t.Fatalf("expected error when the session cannot be registered")
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	f, svc := newAuthFixture(t)
	res, err := svc.Login(context.Background(), "dora123", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), session.NewGuest("dora123", res.SessionID)); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if ok, _ := f.sessions.Exists(context.Background(), res.SessionID); ok {
		t.Fatalf("session still live after logout")
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	f, svc := newAuthFixture(t)

	if err := svc.EnsureAdmin(context.Background(), "admin", "password_admin123"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	admin, ok := f.db.accounts["admin"]
	if !ok || admin.Role != domain.RoleAdmin {
		t.Fatalf("admin not created: %+v", admin)
	}
	hash := admin.PasswordHash

	if err := svc.EnsureAdmin(context.Background(), "admin", "other"); err != nil {
		t.Fatalf("second EnsureAdmin: %v", err)
	}
	if f.db.accounts["admin"].PasswordHash != hash {
		t.Fatalf("existing admin must not be overwritten")
	}

	if err := svc.EnsureAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("blank bootstrap must be a no-op, got %v", err)
	}
}
