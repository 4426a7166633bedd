package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token structure or signature is invalid.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
