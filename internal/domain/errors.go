package domain

import "errors"

// Sentinel errors shared across services and handlers.
var (
	// ErrNotFound is returned when no user document (or no embedded
	// transcription) matches the target identifier.
	ErrNotFound = errors.New("resource not found")

	// ErrEmailTaken is returned when registration or an email update
	// collides with an existing account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks request payloads that fail semantic checks the
	// schema tags cannot express, such as a date that does not parse.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidToken collapses every token failure cause (expired,
	// malformed, bad signature, wrong type) into a single error so callers
	// cannot probe why verification failed.
	ErrInvalidToken = errors.New("invalid token")
)
