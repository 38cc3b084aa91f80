package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/api/middleware"
	"github.com/doramarin/wedding-rsvp/internal/core/aggregate"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// newContext builds an echo context with a validator and, when sess is not
// nil, the session the Auth middleware would have stored.
func newContext(method, target string, body io.Reader, sess session.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		middleware.WithSession(c, sess)
	}
	return c, rec
}

var (
	guestDora = session.NewGuest("dora123", "sid-guest")
	adminSess = session.NewAdmin("admin", "sid-admin")
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	loggedOut []session.Session
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(_ context.Context, sess session.Session) error {
	s.loggedOut = append(s.loggedOut, sess)
	return nil
}

func (s *stubAuthService) EnsureAdmin(context.Context, string, string) error { return nil }

type stubAccountService struct {
	getFn    func(ctx context.Context, s session.Session, username string) (*domain.Account, error)
	createFn func(ctx context.Context, a session.Admin, in ports.CreateAccountInput) (*domain.Account, error)
	updateFn func(ctx context.Context, a session.Admin, username string, in ports.UpdateAccountInput) (*domain.Account, error)
	deleteFn func(ctx context.Context, a session.Admin, username string, confirmed bool) error
}

func (s *stubAccountService) Get(ctx context.Context, sess session.Session, username string) (*domain.Account, error) {
	return s.getFn(ctx, sess, username)
}

func (s *stubAccountService) List(context.Context, session.Admin) ([]domain.Account, error) {
	return []domain.Account{{Username: "dora123", Role: domain.RoleGuest}}, nil
}

func (s *stubAccountService) Create(ctx context.Context, a session.Admin, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, a, in)
}

func (s *stubAccountService) Update(ctx context.Context, a session.Admin, username string, in ports.UpdateAccountInput) (*domain.Account, error) {
	return s.updateFn(ctx, a, username, in)
}

func (s *stubAccountService) Delete(ctx context.Context, a session.Admin, username string, confirmed bool) error {
	return s.deleteFn(ctx, a, username, confirmed)
}

type stubPersonService struct {
	addFn    func(ctx context.Context, s session.Session, username, name string) (*domain.InvitedPerson, error)
	deleteFn func(ctx context.Context, a session.Admin, username, name string, confirmed bool) error
	persons  []domain.InvitedPerson
}

func (s *stubPersonService) Roster(context.Context, session.Guest) ([]domain.InvitedPerson, error) {
	return s.persons, nil
}

func (s *stubPersonService) ListForAccount(_ context.Context, sess session.Session, username string) ([]domain.InvitedPerson, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	return s.persons, nil
}

func (s *stubPersonService) ListAll(context.Context, session.Admin) ([]domain.InvitedPerson, error) {
	return s.persons, nil
}

func (s *stubPersonService) Add(ctx context.Context, sess session.Session, username, name string) (*domain.InvitedPerson, error) {
	return s.addFn(ctx, sess, username, name)
}

func (s *stubPersonService) Delete(ctx context.Context, a session.Admin, username, name string, confirmed bool) error {
	return s.deleteFn(ctx, a, username, name, confirmed)
}

type stubRSVPService struct {
	responses []domain.RSVPResponse
	view      *ports.GuestView
	submitFn  func(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error)
	batchFn   func(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error)
	summary   aggregate.Summary
}

func (s *stubRSVPService) Responses(_ context.Context, g session.Guest) ([]domain.RSVPResponse, error) {
	var out []domain.RSVPResponse
	for _, r := range s.responses {
		if r.Username == g.Username() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRSVPService) View(context.Context, session.Guest) (*ports.GuestView, error) {
	return s.view, nil
}

func (s *stubRSVPService) Submit(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error) {
	return s.submitFn(ctx, g, r)
}

func (s *stubRSVPService) SubmitBatch(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error) {
	return s.batchFn(ctx, g, records)
}

func (s *stubRSVPService) ListAll(context.Context, session.Admin) ([]domain.RSVPResponse, error) {
	return s.responses, nil
}

func (s *stubRSVPService) Summary(context.Context, session.Admin) (aggregate.Summary, error) {
	return s.summary, nil
}

type stubCommentService struct {
	addFn    func(ctx context.Context, g session.Guest, text string) (*domain.Comment, error)
	comments []domain.Comment
}

func (s *stubCommentService) Add(ctx context.Context, g session.Guest, text string) (*domain.Comment, error) {
	return s.addFn(ctx, g, text)
}

func (s *stubCommentService) ListForAccount(_ context.Context, sess session.Session, username string) ([]domain.Comment, error) {
	if !session.CanAccess(sess, username) {
		return nil, domain.ErrForbidden
	}
	return s.comments, nil
}

func (s *stubCommentService) ListAll(context.Context, session.Admin) ([]domain.Comment, error) {
	return s.comments, nil
}

type stubActivityService struct {
	lastFilter ports.ActivityFilter
}

func (s *stubActivityService) Record(context.Context, domain.Activity) error { return nil }

func (s *stubActivityService) List(_ context.Context, _ session.Admin, f ports.ActivityFilter) ([]domain.Activity, error) {
	s.lastFilter = f
	return []domain.Activity{{Username: "dora123", Kind: domain.ActivityLogin}}, nil
}
