package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/reconcile"
)

// GuestState is an account's reconciled RSVP state assembled on the client.
type GuestState struct {
	Account     *domain.Account
	Records     []domain.RSVPResponse
	HasAccepted bool
}

// LoadGuestState fetches the account, its roster and its stored responses
// concurrently and folds them through a reconcile.View in whatever order
// they arrive. onUpdate, when not nil, is called with the records after each
// fold and may be called concurrently.
// The first failing fetch cancels the others and is returned.
func (c *Client) LoadGuestState(ctx context.Context, username string, onUpdate func([]domain.RSVPResponse)) (*GuestState, error) {
	view := reconcile.NewView(username)
	notify := func(records []domain.RSVPResponse) {
		if onUpdate != nil {
			onUpdate(records)
		}
	}

	var account *domain.Account
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := c.Account(gctx, username)
		if err != nil {
			return err
		}
		account = a
		return nil
	})
	g.Go(func() error {
		roster, err := c.Persons(gctx, username)
		if err != nil {
			return err
		}
		notify(view.SetRoster(roster))
		return nil
	})
	g.Go(func() error {
		stored, err := c.Responses(gctx, username)
		if err != nil {
			return err
		}
		notify(view.SetResponses(stored))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := view.Records()
	return &GuestState{
		Account:     account,
		Records:     records,
		HasAccepted: reconcile.HasAccepted(records),
	}, nil
}

// SaveAll submits a reconciled record set as one batch.
func (c *Client) SaveAll(ctx context.Context, state *GuestState) (*BatchResult, error) {
	res, err := c.SubmitBatch(ctx, state.Records)
	if res != nil {
		state.HasAccepted = res.HasAccepted
	}
	return res, err
}
