package handler

import (
	"errors"
	"net/http"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

const internalErrorMessage = "internal server error"

// StatusFor returns the HTTP status a domain error maps to, or 0 when err is
// not a known domain error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrCommentLocked):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrPersonNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists), errors.Is(err, domain.ErrPersonExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, domain.ErrPartialBatch):
		return http.StatusMultiStatus
	}
	return 0
}

// PublicMessage returns the text of err that is safe to show a client.
// Validation messages are written for the user and pass through; other domain
// errors collapse to their sentinel text; anything else is generic.
func PublicMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return err.Error()
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return internalErrorMessage
}

var sentinels = []error{
	domain.ErrInvalidCredentials,
	domain.ErrSessionExpired,
	domain.ErrForbidden,
	domain.ErrCommentLocked,
	domain.ErrAccountNotFound,
	domain.ErrPersonNotFound,
	domain.ErrAccountExists,
	domain.ErrPersonExists,
	domain.ErrConfirmationRequired,
	domain.ErrPartialBatch,
}
