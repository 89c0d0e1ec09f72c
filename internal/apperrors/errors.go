package apperrors

import "errors"

// Sentinel errors for the failure classes the API distinguishes. Services
// and repositories wrap these with fmt.Errorf("...: %w", ...) and handlers
// map them to status codes with errors.Is.
var (
	// ErrValidation indicates missing or malformed input, detected before
	// any store access.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation (username or email
	// already registered).
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a malformed or otherwise unusable token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates a token past its expiry window.
	ErrExpiredToken = errors.New("token expired")

	// ErrBadSignature indicates a token whose signature does not verify.
	ErrBadSignature = errors.New("bad token signature")

	// ErrNotFound covers both a missing resource and a resource owned by
	// someone else; the two are intentionally indistinguishable.
	ErrNotFound = errors.New("not found")
)
