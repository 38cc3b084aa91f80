package ports

import (
	"context"

	"github.com/doramarin/wedding-rsvp/internal/core/aggregate"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// GuestView is an account's reconciled RSVP state.
type GuestView struct {
	Account     *domain.Account
	Records     []domain.RSVPResponse
	HasAccepted bool
}

// RSVPService covers guest submissions and the admin overview.
type RSVPService interface {
	// Responses returns the guest's stored responses that match its roster.
	Responses(ctx context.Context, g session.Guest) ([]domain.RSVPResponse, error)
	View(ctx context.Context, g session.Guest) (*GuestView, error)
	Submit(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error)
	SubmitBatch(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error)
	ListAll(ctx context.Context, a session.Admin) ([]domain.RSVPResponse, error)
	Summary(ctx context.Context, a session.Admin) (aggregate.Summary, error)
}
