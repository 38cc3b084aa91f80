package domain

import (
	"fmt"
	"time"
)

// MenuOption is the main course chosen by an attending guest.
type MenuOption string

const (
	MenuNone MenuOption = ""
	MenuFish MenuOption = "fish"
	MenuMeat MenuOption = "meat"
)

// Valid reports whether m is a known option (including no choice).
func (m MenuOption) Valid() bool {
	switch m {
	case MenuNone, MenuFish, MenuMeat:
		return true
	}
	return false
}

// RSVPResponse is the stored answer for one invited person.
//
// Accepted is tri-state: nil means the guest has not answered yet, which is
// distinct from an explicit decline (false).
type RSVPResponse struct {
	PersonID    string     `json:"person_id,omitempty"`
	Username    string     `json:"user_username"`
	NameSurname string     `json:"name_surname"`
	Accepted    *bool      `json:"accepted"`
	MenuOption  MenuOption `json:"menu_option"`
	Allergies   string     `json:"allergies"`
	Comment     string     `json:"comment"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
}

// IsAccepted reports whether the invitation was explicitly accepted.
func (r RSVPResponse) IsAccepted() bool {
	return r.Accepted != nil && *r.Accepted
}

// IsDeclined reports whether the invitation was explicitly declined.
func (r RSVPResponse) IsDeclined() bool {
	return r.Accepted != nil && !*r.Accepted
}

// Validate checks the response before it is persisted.
func (r RSVPResponse) Validate() error {
	if r.NameSurname == "" && r.PersonID == "" {
		return fmt.Errorf("%w: name_surname is required", ErrValidation)
	}
	if !r.MenuOption.Valid() {
		return fmt.Errorf("%w: menu_option must be one of: fish meat", ErrValidation)
	}
	if r.IsAccepted() && r.MenuOption == MenuNone {
		return fmt.Errorf("%w: menu option is required for %q when the invitation is accepted", ErrValidation, r.NameSurname)
	}
	return nil
}

// Bool returns a pointer to b, for building tri-state acceptance values.
func Bool(b bool) *bool {
	return &b
}
