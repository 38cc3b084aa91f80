package handler

import (
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/rsvp"
)

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		Username:  a.Username,
		Role:      string(a.Role),
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}

func toPersonResponse(p domain.InvitedPerson) personResponse {
	return personResponse{ID: p.ID, Username: p.Username, NameSurname: p.NameSurname}
}

func toPersonResponses(persons []domain.InvitedPerson) []personResponse {
	out := make([]personResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	return out
}

func (r responseRequest) toDomain() domain.RSVPResponse {
	return domain.RSVPResponse{
		PersonID:    r.PersonID,
		NameSurname: r.NameSurname,
		Accepted:    r.Accepted,
		MenuOption:  domain.MenuOption(r.MenuOption),
		Allergies:   r.Allergies,
		Comment:     r.Comment,
	}
}

func toBatchResponse(res rsvp.Result) batchResponse {
	out := batchResponse{
		Results:     make([]batchItemResponse, 0, len(res.Items)),
		HasAccepted: res.HasAccepted,
	}
	for _, it := range res.Items {
		item := batchItemResponse{PersonID: it.PersonID, NameSurname: it.NameSurname, OK: it.OK}
		if it.Err != nil {
			item.Error = PublicMessage(it.Err)
		}
		out.Results = append(out.Results, item)
	}
	if first := res.FirstError(); first != nil {
		out.Error = PublicMessage(first)
	}
	return out
}

func acceptanceLabel(r domain.RSVPResponse) string {
	switch {
	case r.IsAccepted():
		return "accepted"
	case r.IsDeclined():
		return "declined"
	}
	return "unanswered"
}
