package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but belongs to another user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing selection stage, unsupported country,
// malformed gift card amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when an operation needs a signed-in user
// and the request carries no valid session.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the signed-in user lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned by sign-in when the email is unknown or
// the password does not match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrConflict is returned when a unique constraint would be violated
// (e.g. signing up with an email that is already registered).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrExpired is returned when a time-limited resource (share link, gift card)
// exists but is past its expiry. Handlers should map this to HTTP 410.
var ErrExpired = errors.New("expired")

// ErrCollectionRequired is returned by a save that names neither an existing
// collection nor a new one. Nothing is written.
var ErrCollectionRequired = errors.New("collection required")
