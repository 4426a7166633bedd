package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/mocks"
	"github.com/rkshop/admin-api/internal/service/auth"
	"github.com/rkshop/admin-api/internal/store"
)

func newAuthHandler(userStore store.UserStore, jwtService auth.JWTService) *AuthHandler {
	bcryptService := auth.NewBcryptService()
	return NewAuthHandler(userStore, jwtService, bcryptService, bcryptService, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var envelope shared.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var created *domain.User
		userStore := &mocks.MockUserStore{
			CreateFn: func(_ context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/register",
			`{"name":"Admin","email":"admin@example.com","password":"supersecret"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Registration successfully", envelope.Message)
		// Registration never hands out a token.
		assert.Nil(t, envelope.Data)

		require.NotNil(t, created)
		assert.Equal(t, "admin@example.com", created.Email)
		// The stored password must be a hash, not the plaintext.
		assert.NotEqual(t, "supersecret", created.HashedPassword)
		assert.True(t, strings.HasPrefix(created.HashedPassword, "$2"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{
			CreateFn: func(_ context.Context, _ *domain.User) error {
				return fmt.Errorf("insert user: %w", store.ErrEmailExists)
			},
		}
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/register",
			`{"name":"Admin","email":"admin@example.com","password":"supersecret"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Email already exists", envelope.Message)
	})

	t.Run("validation collects all missing fields", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(&mocks.MockUserStore{}, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/register", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.Equal(t, "Validation failed for given parameters", envelope.Message)
		require.Len(t, envelope.Errors, 3)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	bcryptService := auth.NewBcryptService()
	hashed, err := bcryptService.Hash("right-password")
	require.NoError(t, err)

	knownUser, err := domain.NewUser("Admin", "admin@example.com", hashed)
	require.NoError(t, err)

	userStore := &mocks.MockUserStore{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email == knownUser.Email {
				return knownUser, nil
			}
			return nil, fmt.Errorf("find user by email: %w", store.ErrUserNotFound)
		},
	}

	t.Run("success returns token and profile", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Token: "signed-token"}
		handler := newAuthHandler(userStore, jwtService)

		recorder := postJSON(t, handler.Login, "/api/login",
			`{"email":"admin@example.com","password":"right-password"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Logged successfully", envelope.Message)

		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Admin", data["name"])
		assert.Equal(t, "admin@example.com", data["email"])
		assert.Equal(t, "signed-token", data["accessToken"])
		// The password hash never leaves the server.
		assert.NotContains(t, recorder.Body.String(), hashed)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"})

		unknownEmail := postJSON(t, handler.Login, "/api/login",
			`{"email":"nobody@example.com","password":"right-password"}`)
		wrongPassword := postJSON(t, handler.Login, "/api/login",
			`{"email":"admin@example.com","password":"wrong-password"}`)

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String())

		envelope := decodeEnvelope(t, unknownEmail)
		assert.Equal(t, "Invalid username or password.", envelope.Message)
	})
}
