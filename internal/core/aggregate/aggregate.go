// Package aggregate groups stored responses and comments by account for the
// admin overview. It is a pure projection: inputs are never modified.
package aggregate

import (
	"sort"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// AccountGroup is everything one account has submitted.
type AccountGroup struct {
	Username string `json:"user_username"`
	// Responses holds at most one response per name, ordered by name.
	Responses []domain.RSVPResponse `json:"responses"`
	// Comments are in submission order.
	Comments []domain.Comment `json:"comments"`
}

// Totals is the headcount across all responses.
type Totals struct {
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
	Fish     int `json:"fish"`
	Meat     int `json:"meat"`
}

// Summary is the full admin projection.
type Summary struct {
	Accounts []AccountGroup `json:"accounts"`
	Totals   Totals         `json:"totals"`
}

// Group builds the per-account projection. Accounts appear in username
// order and only if they submitted at least one response or comment.
// Comments keep their relative input order; pass them in submission order.
func Group(responses []domain.RSVPResponse, comments []domain.Comment) Summary {
	groups := map[string]*AccountGroup{}
	byName := map[string]map[string]domain.RSVPResponse{}

	get := func(username string) *AccountGroup {
		g, ok := groups[username]
		if !ok {
			g = &AccountGroup{Username: username}
			groups[username] = g
			byName[username] = map[string]domain.RSVPResponse{}
		}
		return g
	}

	for _, r := range responses {
		get(r.Username)
		byName[r.Username][r.NameSurname] = r
	}
	for _, c := range comments {
		g := get(c.Username)
		g.Comments = append(g.Comments, c)
	}

	var sum Summary
	usernames := make([]string, 0, len(groups))
	for u := range groups {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	for _, u := range usernames {
		g := groups[u]
		names := make([]string, 0, len(byName[u]))
		for n := range byName[u] {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			r := byName[u][n]
			g.Responses = append(g.Responses, r)
			sum.Totals.add(r)
		}
		sum.Accounts = append(sum.Accounts, *g)
	}
	return sum
}

func (t *Totals) add(r domain.RSVPResponse) {
	switch {
	case r.IsAccepted():
		t.Accepted++
		switch r.MenuOption {
		case domain.MenuFish:
			t.Fish++
		case domain.MenuMeat:
			t.Meat++
		}
	case r.IsDeclined():
		t.Declined++
	default:
		t.Pending++
	}
}
