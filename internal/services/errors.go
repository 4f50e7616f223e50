package services

import "errors"

// Error taxonomy shared by every service operation. Handlers map these to
// HTTP status codes; everything else surfaces as a 500.
var (
	// ErrNotFound covers rows that are absent, not owned by the caller,
	// or in the wrong lifecycle state for the requested transition.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an attempt to act on a resource the caller does
	// not own where ownership is mandatory.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput marks malformed or missing request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned by login when the email/password
	// pair does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorageUnavailable marks a failed call to the object storage
	// backend on a path where the caller must see the failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
