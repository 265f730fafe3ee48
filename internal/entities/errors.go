package entities

import "errors"

// Business-rule failures are sentinel errors wrapped with context at the
// point of detection and mapped to HTTP statuses at the edge.
var (
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrOrderNotFound = errors.New("order not found")
	ErrQuoteNotFound = errors.New("quote not found")
	ErrUserNotFound  = errors.New("user not found")
)
