// Package common defines shared sentinel errors used across the BiteAI
// core packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Identity errors, returned to the UI layer for display.
	ErrAlreadyExists      = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Input validation.
	ErrValidation = errors.New("validation error")
)
