package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

func TestResponseHandler_View(t *testing.T) {
	stub := &stubRSVPService{view: &ports.GuestView{
		Account:     &domain.Account{Username: "dora123", Message: "Dobrodošli"},
		Records:     []domain.RSVPResponse{{Username: "dora123", NameSurname: "Ana Kovač"}},
		HasAccepted: false,
	}}
	handler := NewResponseHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/guest/view", nil, guestDora)
	if err := handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Account     accountResponse `json:"account"`
		Records     []map[string]any
		HasAccepted bool `json:"has_accepted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Account.Message != "Dobrodošli" || len(resp.Records) != 1 || resp.HasAccepted {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
	if v, ok := resp.Records[0]["accepted"]; !ok || v != nil {
		t.Fatalf("unanswered record must serialize accepted as null: %s", rec.Body.String())
	}
}

func TestResponseHandler_View_AdminForbidden(t *testing.T) {
	handler := NewResponseHandler(&stubRSVPService{})

	c, _ := newContext(http.MethodGet, "/api/guest/view", nil, adminSess)
	if err := handler.View(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestResponseHandler_Submit(t *testing.T) {
	stub := &stubRSVPService{
		submitFn: func(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error) {
			if !r.IsAccepted() || r.MenuOption != domain.MenuFish || r.NameSurname != "Ana Kovač" {
				t.Fatalf("unexpected record: %+v", r)
			}
			r.Username = g.Username()
			r.PersonID = "p-1"
			return &r, nil
		},
	}
	handler := NewResponseHandler(stub)

	body := `{"name_surname":"Ana Kovač","accepted":true,"menu_option":"fish","allergies":""}`
	c, rec := newContext(http.MethodPost, "/api/form_responses", strings.NewReader(body), guestDora)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"person_id":"p-1"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestResponseHandler_Submit_UnknownMenu(t *testing.T) {
	handler := NewResponseHandler(&stubRSVPService{})

	c, _ := newContext(http.MethodPost, "/api/form_responses", strings.NewReader(`{"name_surname":"Ana","accepted":true,"menu_option":"vegan"}`), guestDora)
	if err := handler.Submit(c); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestResponseHandler_SubmitBatch_Partial(t *testing.T) {
	stub := &stubRSVPService{
		batchFn: func(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error) {
			if len(records) != 3 {
				t.Fatalf("expected 3 records, got %d", len(records))
			}
			return rsvp.Result{
				Items: []rsvp.ItemResult{
					{NameSurname: "Ana Kovač", OK: true},
					{NameSurname: "Ivo Kovač", Err: fmt.Errorf("upsert response: connection reset by 10.0.0.7")},
					{NameSurname: "Eva Kovač", Err: fmt.Errorf("resolve: %w", domain.ErrPersonNotFound)},
				},
				HasAccepted: true,
			}, nil
		},
	}
	handler := NewResponseHandler(stub)

	body := `{"responses":[{"name_surname":"Ana Kovač","accepted":true,"menu_option":"meat"},{"name_surname":"Ivo Kovač","accepted":false},{"name_surname":"Eva Kovač","accepted":false}]}`
	c, rec := newContext(http.MethodPost, "/api/form_responses/batch", strings.NewReader(body), guestDora)
	if err := handler.SubmitBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207, got %d", rec.Code)
	}

	var resp batchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.HasAccepted || len(resp.Results) != 3 || resp.Results[1].OK {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Error != "internal server error" || resp.Results[1].Error != "internal server error" {
		t.Fatalf("write failure detail leaked: %+v", resp)
	}
	if resp.Results[2].Error != domain.ErrPersonNotFound.Error() {
		t.Fatalf("domain error = %q, want %q", resp.Results[2].Error, domain.ErrPersonNotFound.Error())
	}
}

func TestResponseHandler_SubmitBatch_AllSaved(t *testing.T) {
	stub := &stubRSVPService{
		batchFn: func(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error) {
			return rsvp.Result{Items: []rsvp.ItemResult{{NameSurname: "Ana Kovač", OK: true}}}, nil
		},
	}
	handler := NewResponseHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/form_responses/batch", strings.NewReader(`{"responses":[{"name_surname":"Ana Kovač","accepted":false}]}`), guestDora)
	if err := handler.SubmitBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestResponseHandler_SubmitBatch_ValidationError(t *testing.T) {
	stub := &stubRSVPService{
		batchFn: func(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error) {
			return rsvp.Result{}, rsvp.Validate(records)
		},
	}
	handler := NewResponseHandler(stub)

	c, _ := newContext(http.MethodPost, "/api/form_responses/batch", strings.NewReader(`{"responses":[{"name_surname":"Ana Kovač","accepted":true}]}`), guestDora)
	if err := handler.SubmitBatch(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestResponseHandler_List(t *testing.T) {
	stub := &stubRSVPService{responses: []domain.RSVPResponse{
		{Username: "dora123", NameSurname: "Ana Kovač"},
		{Username: "marin", NameSurname: "Ema Horvat"},
	}}
	handler := NewResponseHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/form_responses", nil, adminSess)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var all []domain.RSVPResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &all)
	if len(all) != 2 {
		t.Fatalf("admin should see every response, got %d", len(all))
	}

	c, rec = newContext(http.MethodGet, "/api/form_responses", nil, guestDora)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var own []domain.RSVPResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &own)
	if len(own) != 1 || own[0].Username != "dora123" {
		t.Fatalf("guest should see own responses only: %+v", own)
	}

	c, _ = newContext(http.MethodGet, "/api/form_responses/marin", nil, guestDora)
	c.SetParamNames("username")
	c.SetParamValues("marin")
	if err := handler.ListForAccount(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	c, rec = newContext(http.MethodGet, "/api/form_responses/marin", nil, adminSess)
	c.SetParamNames("username")
	c.SetParamValues("marin")
	if err := handler.ListForAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var filtered []domain.RSVPResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &filtered)
	if len(filtered) != 1 || filtered[0].Username != "marin" {
		t.Fatalf("unexpected filtered list: %+v", filtered)
	}
}
