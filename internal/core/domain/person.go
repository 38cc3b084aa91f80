package domain

import "time"

// InvitedPerson is one named invitee on an account's roster.
//
// ID is a surrogate key assigned at creation. Responses are joined to the
// roster by ID; NameSurname is what guests and admins see.
type InvitedPerson struct {
	ID          string    `json:"id"`
	Username    string    `json:"user_username"`
	NameSurname string    `json:"name_surname"`
	CreatedAt   time.Time `json:"created_at"`
}
