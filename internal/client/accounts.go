package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// NewAccount is the body of an account creation.
type NewAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AccountUpdate changes only its non-nil fields.
type AccountUpdate struct {
	Message  *string `json:"message,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (c *Client) Account(ctx context.Context, username string) (*domain.Account, error) {
	var out domain.Account
	if _, err := c.do(ctx, http.MethodGet, "/api/users/"+escape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	if _, err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAccount(ctx context.Context, in NewAccount) (*domain.Account, error) {
	var out domain.Account
	if _, err := c.do(ctx, http.MethodPost, "/api/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAccount(ctx context.Context, username string, in AccountUpdate) (*domain.Account, error) {
	var out domain.Account
	if _, err := c.do(ctx, http.MethodPut, "/api/users/"+escape(username), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount deletes an account and everything it owns. The server
// refuses unless confirm is true.
func (c *Client) DeleteAccount(ctx context.Context, username string, confirm bool) error {
	q := url.Values{"confirm": {strconv.FormatBool(confirm)}}
	_, err := c.do(ctx, http.MethodDelete, "/api/users/"+escape(username), q, nil, nil)
	return err
}

// Persons returns one account's roster.
func (c *Client) Persons(ctx context.Context, username string) ([]domain.InvitedPerson, error) {
	var out []domain.InvitedPerson
	if _, err := c.do(ctx, http.MethodGet, "/api/name_surnames/"+escape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllPersons(ctx context.Context) ([]domain.InvitedPerson, error) {
	var out []domain.InvitedPerson
	if _, err := c.do(ctx, http.MethodGet, "/api/namesurnames", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPerson adds name to the account's roster. It returns nil, nil when the
// server ignored a blank name.
func (c *Client) AddPerson(ctx context.Context, username, name string) (*domain.InvitedPerson, error) {
	var out domain.InvitedPerson
	body := map[string]string{"user_username": username, "name_surname": name}
	status, err := c.do(ctx, http.MethodPost, "/api/namesurnames", nil, body, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) DeletePerson(ctx context.Context, username, name string, confirm bool) error {
	q := url.Values{
		"user_username": {username},
		"confirm":       {strconv.FormatBool(confirm)},
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/namesurnames/"+escape(name), q, nil, nil)
	return err
}
