// Package reconcile merges an account's roster with its stored RSVP
// responses into one editable record per invited person.
package reconcile

import (
	"sync"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// Reconcile returns one record per roster entry, in roster order.
//
// A person without a stored response gets a default record (no answer,
// empty menu, allergies and comment). A stored response is merged over the
// default; identity fields always come from the roster. Responses are
// matched by person ID, falling back to exact name equality when either
// side carries no ID. Stored responses that match no roster entry are
// dropped.
func Reconcile(username string, roster []domain.InvitedPerson, stored []domain.RSVPResponse) []domain.RSVPResponse {
	byID := make(map[string]domain.RSVPResponse, len(stored))
	byName := make(map[string]domain.RSVPResponse, len(stored))
	for _, s := range stored {
		if s.PersonID != "" {
			byID[s.PersonID] = s
		}
		if _, seen := byName[s.NameSurname]; !seen {
			byName[s.NameSurname] = s
		}
	}

	out := make([]domain.RSVPResponse, 0, len(roster))
	for _, p := range roster {
		rec := domain.RSVPResponse{
			PersonID:    p.ID,
			Username:    username,
			NameSurname: p.NameSurname,
		}
		if s, ok := lookup(p, byID, byName); ok {
			rec = merge(rec, s)
		}
		out = append(out, rec)
	}
	return out
}

func lookup(p domain.InvitedPerson, byID, byName map[string]domain.RSVPResponse) (domain.RSVPResponse, bool) {
	if p.ID != "" {
		if s, ok := byID[p.ID]; ok {
			return s, true
		}
	}
	s, ok := byName[p.NameSurname]
	if !ok {
		return domain.RSVPResponse{}, false
	}
	// A name match against a response that belongs to a different person ID
	// is a stale row for a re-created invitee, not this one.
	if p.ID != "" && s.PersonID != "" && s.PersonID != p.ID {
		return domain.RSVPResponse{}, false
	}
	return s, true
}

func merge(base, stored domain.RSVPResponse) domain.RSVPResponse {
	if stored.Accepted != nil {
		v := *stored.Accepted
		base.Accepted = &v
	}
	base.MenuOption = stored.MenuOption
	base.Allergies = stored.Allergies
	base.Comment = stored.Comment
	base.UpdatedAt = stored.UpdatedAt
	return base
}

// HasAccepted reports whether any record explicitly accepted the invitation.
// It drives visibility of the free-text message form.
func HasAccepted(records []domain.RSVPResponse) bool {
	for _, r := range records {
		if r.IsAccepted() {
			return true
		}
	}
	return false
}

// View holds the latest known roster and stored responses for one account
// and re-runs Reconcile whenever either input arrives. Inputs may arrive in
// any order and any number of times; each call is a fold over the latest
// inputs, so nothing previously merged is lost and repeated calls with the
// same inputs yield the same records.
type View struct {
	mu        sync.Mutex
	username  string
	roster    []domain.InvitedPerson
	stored    []domain.RSVPResponse
	hasRoster bool
	records   []domain.RSVPResponse
}

// NewView returns an empty View for username.
func NewView(username string) *View {
	return &View{username: username}
}

// SetRoster replaces the roster and returns the reconciled records.
func (v *View) SetRoster(roster []domain.InvitedPerson) []domain.RSVPResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.roster = append([]domain.InvitedPerson(nil), roster...)
	v.hasRoster = true
	return v.refresh()
}

// SetResponses replaces the stored responses and returns the reconciled records.
func (v *View) SetResponses(stored []domain.RSVPResponse) []domain.RSVPResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stored = append([]domain.RSVPResponse(nil), stored...)
	return v.refresh()
}

// Records returns a copy of the current reconciled records. Until the roster
// has arrived there are none, whatever responses are already known.
func (v *View) Records() []domain.RSVPResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	return cloneRecords(v.records)
}

// HasAccepted reports HasAccepted over the current records.
func (v *View) HasAccepted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return HasAccepted(v.records)
}

func (v *View) refresh() []domain.RSVPResponse {
	if !v.hasRoster {
		v.records = nil
		return nil
	}
	v.records = Reconcile(v.username, v.roster, v.stored)
	return cloneRecords(v.records)
}

func cloneRecords(in []domain.RSVPResponse) []domain.RSVPResponse {
	if in == nil {
		return nil
	}
	out := make([]domain.RSVPResponse, len(in))
	for i, r := range in {
		if r.Accepted != nil {
			r.Accepted = domain.Bool(*r.Accepted)
		}
		out[i] = r
	}
	return out
}
