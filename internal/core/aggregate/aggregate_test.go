package aggregate

import (
	"testing"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

func TestGroup_ByAccountThenName(t *testing.T) {
	responses := []domain.RSVPResponse{
		{Username: "marin", NameSurname: "Zoran Horvat", Accepted: domain.Bool(false)},
		{Username: "dora123", NameSurname: "Ivo Kovač", Accepted: domain.Bool(true), MenuOption: domain.MenuMeat},
		{Username: "dora123", NameSurname: "Ana Kovač", Accepted: domain.Bool(true), MenuOption: domain.MenuFish},
		{Username: "marin", NameSurname: "Ema Horvat"},
	}

	sum := Group(responses, nil)

	if len(sum.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(sum.Accounts))
	}
	if sum.Accounts[0].Username != "dora123" || sum.Accounts[1].Username != "marin" {
		t.Fatalf("accounts not ordered by username: %+v", sum.Accounts)
	}
	dora := sum.Accounts[0].Responses
	if len(dora) != 2 || dora[0].NameSurname != "Ana Kovač" || dora[1].NameSurname != "Ivo Kovač" {
		t.Fatalf("responses not grouped by name: %+v", dora)
	}
	want := Totals{Accepted: 2, Declined: 1, Pending: 1, Fish: 1, Meat: 1}
	if sum.Totals != want {
		t.Fatalf("totals = %+v, want %+v", sum.Totals, want)
	}
}

func TestGroup_CommentsInSubmissionOrder(t *testing.T) {
	comments := []domain.Comment{
		{Seq: 1, Username: "dora123", Text: "Can't wait!"},
		{Seq: 2, Username: "marin", Text: "See you there"},
		{Seq: 3, Username: "dora123", Text: "We'll bring the rakija"},
	}

	sum := Group(nil, comments)

	if len(sum.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(sum.Accounts))
	}
	dora := sum.Accounts[0]
	if len(dora.Comments) != 2 {
		t.Fatalf("expected both comments for dora123, got %+v", dora.Comments)
	}
	if dora.Comments[0].Text != "Can't wait!" || dora.Comments[1].Text != "We'll bring the rakija" {
		t.Fatalf("comments out of submission order: %+v", dora.Comments)
	}
	if len(dora.Responses) != 0 {
		t.Fatalf("account without responses must have none, got %+v", dora.Responses)
	}
}

func TestGroup_Empty(t *testing.T) {
	sum := Group(nil, nil)
	if len(sum.Accounts) != 0 || sum.Totals != (Totals{}) {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	responses := []domain.RSVPResponse{
		{Username: "b", NameSurname: "Y"},
		{Username: "a", NameSurname: "X"},
	}
	_ = Group(responses, nil)
	if responses[0].Username != "b" || responses[1].Username != "a" {
		t.Fatalf("input reordered: %+v", responses)
	}
}
