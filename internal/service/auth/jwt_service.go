package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT session tokens.
// Tokens are stateless: there is no refresh or revocation mechanism, so
// expiry is the only invalidation path.
type JWTService interface {
	// GenerateToken creates a signed token embedding the user's identity.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken validates a token string and extracts its claims.
	// Returns ErrExpiredToken when the expiry has passed and
	// ErrInvalidToken for any structural or signature problem.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Identity is the public user profile embedded in a session token.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Claims is the verified claim set extracted from a valid token.
// Handlers must read user identity only from here, never from
// client-supplied fields.
type Claims struct {
	UserID    string
	Name      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
