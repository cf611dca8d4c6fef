package app

import "errors"

// Closed set of error kinds surfaced by the application services. Handlers
// switch on these with errors.Is instead of probing error text.
var (
	// ErrInvalidCredentials indicates that the provided email or password was
	// incorrect. Deliberately uniform: it never reveals which one was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenInvalid indicates a session token with a bad signature or shape.
	ErrTokenInvalid = errors.New("invalid session token")
	// ErrTokenExpired indicates a session token past its validity window.
	ErrTokenExpired = errors.New("session token expired")
	// ErrForbidden indicates an authenticated identity without the required
	// capability.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a request body that failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
