package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/aggregate"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/reconcile"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

type RSVPService struct {
	accounts  ports.AccountRepository
	persons   ports.PersonRepository
	responses ports.ResponseRepository
	comments  ports.CommentRepository
	activity  ports.ActivityPublisher
	log       zerolog.Logger
}

func NewRSVPService(
	accounts ports.AccountRepository,
	persons ports.PersonRepository,
	responses ports.ResponseRepository,
	comments ports.CommentRepository,
	activity ports.ActivityPublisher,
	log zerolog.Logger,
) *RSVPService {
	return &RSVPService{
		accounts:  accounts,
		persons:   persons,
		responses: responses,
		comments:  comments,
		activity:  activity,
		log:       log,
	}
}

// Responses returns the guest's stored responses, restricted to persons
// still on its roster.
func (s *RSVPService) Responses(ctx context.Context, g session.Guest) ([]domain.RSVPResponse, error) {
	roster, err := s.persons.ListByAccount(ctx, g.Username())
	if err != nil {
		return nil, err
	}
	stored, err := s.responses.ListByAccount(ctx, g.Username())
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		ids[p.ID] = struct{}{}
	}
	out := make([]domain.RSVPResponse, 0, len(stored))
	for _, r := range stored {
		if _, ok := ids[r.PersonID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// View reconciles the guest's roster with its stored responses.
func (s *RSVPService) View(ctx context.Context, g session.Guest) (*ports.GuestView, error) {
	account, err := s.accounts.FindByUsername(ctx, g.Username())
	if err != nil {
		return nil, err
	}
	roster, err := s.persons.ListByAccount(ctx, g.Username())
	if err != nil {
		return nil, err
	}
	stored, err := s.responses.ListByAccount(ctx, g.Username())
	if err != nil {
		return nil, err
	}

	records := reconcile.Reconcile(g.Username(), roster, stored)
	return &ports.GuestView{
		Account:     account,
		Records:     records,
		HasAccepted: reconcile.HasAccepted(records),
	}, nil
}

// Submit upserts one response. The person is resolved within the guest's
// roster by ID or exact name, so a response can never be orphaned.
func (s *RSVPService) Submit(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	saved, err := s.upsert(ctx, g, r)
	if err != nil {
		return nil, err
	}
	s.publish(g, fmt.Sprintf("%s: %s", saved.NameSurname, acceptance(saved)))
	return saved, nil
}

// SubmitBatch saves every record as its own upsert. Nothing is written if
// any record fails validation; otherwise failures are reported per record
// and successful writes are kept.
func (s *RSVPService) SubmitBatch(ctx context.Context, g session.Guest, records []domain.RSVPResponse) (rsvp.Result, error) {
	res, err := rsvp.Submit(ctx, records, func(ctx context.Context, rec domain.RSVPResponse) error {
		_, err := s.upsert(ctx, g, rec)
		return err
	}, rsvp.DefaultConcurrency)
	if err != nil {
		return res, err
	}

	if res.OK() {
		s.log.Info().Str("username", g.Username()).Int("records", len(records)).Msg("rsvp batch saved")
	} else {
		s.log.Warn().Err(res.FirstError()).Str("username", g.Username()).
			Int("failed", res.Failed()).Int("records", len(records)).Msg("rsvp batch partially saved")
	}
	s.publish(g, fmt.Sprintf("batch of %d, %d failed", len(records), res.Failed()))
	return res, nil
}

func (s *RSVPService) upsert(ctx context.Context, g session.Guest, r domain.RSVPResponse) (*domain.RSVPResponse, error) {
	var (
		p   *domain.InvitedPerson
		err error
	)
	if r.PersonID != "" {
		p, err = s.persons.FindByID(ctx, g.Username(), r.PersonID)
	} else {
		p, err = s.persons.FindByName(ctx, g.Username(), r.NameSurname)
	}
	if err != nil {
		return nil, err
	}

	r.PersonID = p.ID
	r.Username = g.Username()
	r.NameSurname = p.NameSurname
	r.UpdatedAt = time.Now().UTC()
	if err := s.responses.Upsert(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RSVPService) ListAll(ctx context.Context, _ session.Admin) ([]domain.RSVPResponse, error) {
	return s.responses.ListAll(ctx)
}

// Summary groups all responses and comments by account.
func (s *RSVPService) Summary(ctx context.Context, _ session.Admin) (aggregate.Summary, error) {
	responses, err := s.responses.ListAll(ctx)
	if err != nil {
		return aggregate.Summary{}, err
	}
	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		return aggregate.Summary{}, err
	}
	return aggregate.Group(responses, comments), nil
}

func (s *RSVPService) publish(g session.Guest, detail string) {
	s.activity.Publish(domain.Activity{
		Username:   g.Username(),
		Actor:      g.Username(),
		Kind:       domain.ActivityRSVPSaved,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
}

func acceptance(r *domain.RSVPResponse) string {
	switch {
	case r.IsAccepted():
		return "accepted"
	case r.IsDeclined():
		return "declined"
	}
	return "unanswered"
}
