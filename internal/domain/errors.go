package domain

import "errors"

// Sentinel errors shared by services and repositories. Services wrap them with
// context (fmt.Errorf("%w: ...")); the HTTP layer maps them with errors.Is.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned for malformed or out-of-policy input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when a state or business rule forbids the operation,
	// including uniqueness clashes and ownership violations.
	ErrConflict = errors.New("conflict")
	// ErrModerationNotConfigured is returned when bulk moderation is attempted on an
	// event without request moderation or without a participant limit. It is a
	// configuration-invariant violation, not a business rejection.
	ErrModerationNotConfigured = errors.New("request moderation or participant limit is not configured for the event")
)

// ErrUnauthorized is returned when admin credentials or a token are rejected.
var ErrUnauthorized = errors.New("unauthorized")
