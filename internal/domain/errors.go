// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a valid
	// 24-character hex ObjectID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyEmail is returned when a user email is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyHashedPassword is returned when a user record carries no
	// password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrInvalidStatus is returned when a category status is outside the
	// stored 0-255 range.
	ErrInvalidStatus = errors.New("status out of range")
)
