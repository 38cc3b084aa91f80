package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

func TestCommentHandler_Add(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, g session.Guest, text string) (*domain.Comment, error) {
			return &domain.Comment{Seq: 1, Username: g.Username(), Text: text}, nil
		},
	}
	handler := NewCommentHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/comments", strings.NewReader(`{"comment":"Jedva čekamo!"}`), guestDora)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), `"user_username":"dora123"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestCommentHandler_Add_Locked(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, g session.Guest, text string) (*domain.Comment, error) {
			return nil, domain.ErrCommentLocked
		},
	}
	handler := NewCommentHandler(stub)

	c, _ := newContext(http.MethodPost, "/api/comments", strings.NewReader(`{"comment":"hi"}`), guestDora)
	if err := handler.Add(c); !errors.Is(err, domain.ErrCommentLocked) {
		t.Fatalf("expected ErrCommentLocked, got %v", err)
	}
}

func TestCommentHandler_Add_Empty(t *testing.T) {
	handler := NewCommentHandler(&stubCommentService{})

	c, _ := newContext(http.MethodPost, "/api/comments", strings.NewReader(`{"comment":""}`), guestDora)
	if err := handler.Add(c); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCommentHandler_ListAll_AdminOnly(t *testing.T) {
	handler := NewCommentHandler(&stubCommentService{comments: []domain.Comment{{Seq: 1, Username: "dora123", Text: "a"}}})

	c, rec := newContext(http.MethodGet, "/api/comments", nil, adminSess)
	if err := handler.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"comment":"a"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	c, _ = newContext(http.MethodGet, "/api/comments", nil, guestDora)
	if err := handler.ListAll(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
