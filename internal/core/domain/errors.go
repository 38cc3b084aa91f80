package domain

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSessionExpired       = errors.New("session expired")
	ErrForbidden            = errors.New("access forbidden")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account already exists")
	ErrPersonNotFound       = errors.New("invited person not found")
	ErrPersonExists         = errors.New("invited person already exists for this account")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrCommentLocked        = errors.New("a message can be left once at least one guest has accepted")
	ErrPartialBatch         = errors.New("some responses could not be saved")
)
