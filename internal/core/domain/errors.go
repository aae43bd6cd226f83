package domain

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

// Authentication failures (401).
var (
	ErrAuthMissing           = errors.New("missing authorization header")
	ErrAuthMalformed         = errors.New("invalid authorization header")
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenRevoked          = errors.New("token revoked")
	ErrSharedSecretMismatch  = errors.New("invalid api token")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

var ErrForbidden = errors.New("access forbidden")

var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrStoreNotFound        = fmt.Errorf("store %w", ErrNotFound)
	ErrProductNotFound      = fmt.Errorf("product %w", ErrNotFound)
	ErrServiceNotFound      = fmt.Errorf("service %w", ErrNotFound)
	ErrJobNotFound          = fmt.Errorf("job %w", ErrNotFound)
	ErrAnnouncementNotFound = fmt.Errorf("announcement %w", ErrNotFound)
)

var ErrDuplicateUser = errors.New("user already exists")

// ErrStoreUnavailable wraps every connection or query failure of the
// relational store (and of the optional revocation store).
var ErrStoreUnavailable = errors.New("store unavailable")

// Invalid returns a validation error carrying a client-safe reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// Unavailable wraps a backend failure so it maps to ErrStoreUnavailable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// IsAuthentication reports whether err is one of the 401-class failures.
func IsAuthentication(err error) bool {
	for _, target := range []error{
		ErrAuthMissing, ErrAuthMalformed, ErrTokenMalformed, ErrTokenInvalidSignature,
		ErrTokenExpired, ErrTokenRevoked, ErrSharedSecretMismatch, ErrInvalidCredentials,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
