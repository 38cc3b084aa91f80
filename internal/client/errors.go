package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// ErrNetwork wraps transport failures: the request never produced an HTTP
// response.
var ErrNetwork = errors.New("network failure")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Unwrap maps the response to the domain error the server rendered, so
// callers can use errors.Is with domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		if e.Message == domain.ErrSessionExpired.Error() {
			return domain.ErrSessionExpired
		}
		return domain.ErrInvalidCredentials
	case http.StatusForbidden:
		if e.Message == domain.ErrCommentLocked.Error() {
			return domain.ErrCommentLocked
		}
		return domain.ErrForbidden
	case http.StatusNotFound:
		if e.Message == domain.ErrPersonNotFound.Error() {
			return domain.ErrPersonNotFound
		}
		return domain.ErrAccountNotFound
	case http.StatusConflict:
		if e.Message == domain.ErrPersonExists.Error() {
			return domain.ErrPersonExists
		}
		return domain.ErrAccountExists
	case http.StatusPreconditionRequired:
		return domain.ErrConfirmationRequired
	}
	return nil
}
