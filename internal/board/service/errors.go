package service

import "errors"

// Error kinds surfaced by the services. Handlers map these to status codes
// and stable messages; nothing below ever reaches a client verbatim.
var (
	// ErrInvalidInput reports empty or malformed input fields.
	ErrInvalidInput = errors.New("invalid_input")

	// ErrAlreadyExists reports a duplicate username or board name, whether
	// caught by a pre-check or by the store's uniqueness constraint.
	ErrAlreadyExists = errors.New("already_exists")

	// ErrNotFound reports an unknown username or resource.
	ErrNotFound = errors.New("not_found")

	// ErrInvalidPassword reports a password hash mismatch during sign-in.
	// Handlers surface it exactly like ErrNotFound to avoid username
	// enumeration.
	ErrInvalidPassword = errors.New("invalid_password")

	// ErrUnauthorized reports an authorization policy denial.
	ErrUnauthorized = errors.New("unauthorized")
)
