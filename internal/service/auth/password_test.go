package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptService_HashAndCompare(t *testing.T) {
	t.Parallel()

	svc := NewBcryptService()

	hashed, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, svc.Compare(hashed, "correct horse battery staple"))
	assert.False(t, svc.Compare(hashed, "wrong password"))
}

func TestBcryptService_CompareFailsClosed(t *testing.T) {
	t.Parallel()

	svc := NewBcryptService()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "malformed hash", hash: "not-a-bcrypt-hash"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, svc.Compare(tt.hash, "any password"))
		})
	}
}

func TestBcryptService_HashRejectsOverlongPassword(t *testing.T) {
	t.Parallel()

	svc := NewBcryptService()

	// bcrypt caps input at 72 bytes.
	_, err := svc.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}
