// Package common defines shared constants and sentinel errors used across
// the client and server layers of SkillBridge. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Account lifecycle errors.
	ErrValidation       = errors.New("validation error")
	ErrDuplicateAccount = errors.New("an account already exists for this email and role")
	ErrNotFound         = errors.New("not found")

	// ErrInvalidCredentials covers both an unknown account and a wrong
	// password. The message deliberately does not say which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Presenter errors.
	ErrInsufficientData = errors.New("insufficient data")

	// Remote auth backend errors.
	ErrRequestTimeout = errors.New("request timed out")

	ErrInternal = errors.New("internal error")
)
