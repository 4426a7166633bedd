package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkshop/admin-api/internal/config"
)

const testSecret = "test-jwt-secret-at-least-32-characters-long"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	}
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	identity := Identity{
		UserID: "65a1b2c3d4e5f6a7b8c9d0e1",
		Name:   "Admin",
		Email:  "admin@example.com",
	}

	token, err := svc.GenerateToken(context.Background(), identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, identity.Name, claims.Name)
	assert.Equal(t, identity.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now().UTC()

	issuer := &hmacJWTService{
		signingKey:    []byte(testSecret),
		tokenLifetime: time.Hour,
		timeFunc:      func() time.Time { return issuedAt },
	}

	token, err := issuer.GenerateToken(context.Background(), Identity{
		UserID: "65a1b2c3d4e5f6a7b8c9d0e1",
		Email:  "admin@example.com",
	})
	require.NoError(t, err)

	// Same key, but the verifier's clock sits past the embedded expiry.
	verifier := &hmacJWTService{
		signingKey:    []byte(testSecret),
		tokenLifetime: time.Hour,
		timeFunc:      func() time.Time { return issuedAt.Add(2 * time.Hour) },
	}

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherSvc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "another-jwt-secret-at-least-32-chars!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	foreignToken, err := otherSvc.GenerateToken(context.Background(), Identity{
		UserID: "65a1b2c3d4e5f6a7b8c9d0e1",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong signature", token: foreignToken},
		{name: "structurally broken", token: "aaa.bbb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
