package handler

import (
	"time"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
}

type createAccountRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=guest admin"`
	Message  string `json:"message,omitempty"`
}

type updateAccountRequest struct {
	Message  *string `json:"message,omitempty"`
	Password *string `json:"password,omitempty"`
}

type accountResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type addPersonRequest struct {
	Username    string `json:"user_username" validate:"required"`
	NameSurname string `json:"name_surname"`
}

type personResponse struct {
	ID          string `json:"id"`
	Username    string `json:"user_username"`
	NameSurname string `json:"name_surname"`
}

type responseRequest struct {
	PersonID    string `json:"person_id,omitempty"`
	NameSurname string `json:"name_surname" validate:"required_without=PersonID"`
	Accepted    *bool  `json:"accepted"`
	MenuOption  string `json:"menu_option" validate:"omitempty,oneof=fish meat"`
	Allergies   string `json:"allergies" validate:"max=500"`
	Comment     string `json:"comment" validate:"max=2000"`
}

type batchRequest struct {
	Responses []responseRequest `json:"responses" validate:"required,min=1,dive"`
}

type batchItemResponse struct {
	PersonID    string `json:"person_id,omitempty"`
	NameSurname string `json:"name_surname"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

type batchResponse struct {
	Results     []batchItemResponse `json:"results"`
	HasAccepted bool                `json:"has_accepted"`
	Error       string              `json:"error,omitempty"`
}

type guestViewResponse struct {
	Account     accountResponse       `json:"account"`
	Records     []domain.RSVPResponse `json:"records"`
	HasAccepted bool                  `json:"has_accepted"`
}

type commentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}
