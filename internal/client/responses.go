package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/doramarin/wedding-rsvp/internal/core/aggregate"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
)

// BatchItem is the outcome of one record of a batch.
type BatchItem struct {
	PersonID    string `json:"person_id,omitempty"`
	NameSurname string `json:"name_surname"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

// BatchResult is the server's per-record report of a batch.
type BatchResult struct {
	Results     []BatchItem `json:"results"`
	HasAccepted bool        `json:"has_accepted"`
	Error       string      `json:"error,omitempty"`
}

// GuestView is the server-side reconciled state of the caller's account.
type GuestView struct {
	Account     domain.Account        `json:"account"`
	Records     []domain.RSVPResponse `json:"records"`
	HasAccepted bool                  `json:"has_accepted"`
}

// Responses returns the stored responses of one account.
func (c *Client) Responses(ctx context.Context, username string) ([]domain.RSVPResponse, error) {
	var out []domain.RSVPResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/form_responses/"+escape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllResponses(ctx context.Context) ([]domain.RSVPResponse, error) {
	var out []domain.RSVPResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/form_responses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GuestView(ctx context.Context) (*GuestView, error) {
	var out GuestView
	if _, err := c.do(ctx, http.MethodGet, "/api/guest/view", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitResponse upserts a single record.
func (c *Client) SubmitResponse(ctx context.Context, r domain.RSVPResponse) (*domain.RSVPResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var out domain.RSVPResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/form_responses", nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitBatch saves every record. Records are validated locally first and
// nothing is sent when one is invalid. On partial failure the result is
// returned together with an error wrapping domain.ErrPartialBatch and the
// first failing message.
func (c *Client) SubmitBatch(ctx context.Context, records []domain.RSVPResponse) (*BatchResult, error) {
	if err := rsvp.Validate(records); err != nil {
		return nil, err
	}
	var out BatchResult
	body := map[string]any{"responses": records}
	status, err := c.do(ctx, http.MethodPost, "/api/form_responses/batch", nil, body, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusMultiStatus {
		return &out, fmt.Errorf("%w: %s", domain.ErrPartialBatch, out.Error)
	}
	return &out, nil
}

func (c *Client) AddComment(ctx context.Context, text string) (*domain.Comment, error) {
	var out domain.Comment
	if _, err := c.do(ctx, http.MethodPost, "/api/comments", nil, map[string]string{"comment": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Comments(ctx context.Context) ([]domain.Comment, error) {
	var out []domain.Comment
	if _, err := c.do(ctx, http.MethodGet, "/api/comments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AccountComments(ctx context.Context, username string) ([]domain.Comment, error) {
	var out []domain.Comment
	if _, err := c.do(ctx, http.MethodGet, "/api/comments/"+escape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Summary(ctx context.Context) (*aggregate.Summary, error) {
	var out aggregate.Summary
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activity lists activity entries, newest first. Zero limit uses the server
// default.
func (c *Client) Activity(ctx context.Context, username string, limit int) ([]domain.Activity, error) {
	q := url.Values{}
	if username != "" {
		q.Set("username", username)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.Activity
	if _, err := c.do(ctx, http.MethodGet, "/api/activity", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
