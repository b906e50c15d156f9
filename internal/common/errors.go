// Package common defines shared constants and sentinel errors used across
// memoryvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. Also used for objects owned by someone else.
	ErrorNotFound = errors.New("not found")

	// ErrorStoreFailed wraps the cause of a failed store. Transports show
	// only this error's text, never the wrapped cause.
	ErrorStoreFailed = errors.New("could not store object")

	// ErrCapabilityDenied is returned when an operation needs a capability
	// the object's privacy level does not grant (e.g. reading zero-knowledge content).
	ErrCapabilityDenied = errors.New("operation not permitted for privacy level")

	// ErrInvariantViolation marks a descriptor whose encryption metadata does not
	// match its privacy level. It should be unreachable.
	ErrInvariantViolation = errors.New("descriptor invariant violation")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
