// Package api provides the HTTP handlers for the admin API. Every handler
// is a linear pipeline: validate the request, perform the store operation,
// wrap the outcome in the response envelope.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/api/validation"
	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/service/auth"
	"github.com/rkshop/admin-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validation.Validator
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validation.New(),
		logger:           log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /login. An unknown email and a wrong password produce
// the same response so the failure cause is not leaked.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		log.Error("failed to look up user", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	if !h.passwordVerifier.Compare(user.HashedPassword, req.Password) {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.Identity{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgLoginSuccess, LoginResponse{
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	})
}

// Register handles POST /register. Registration never returns a token;
// login is a separate step.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, hashed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgValidationFailed)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgEmailAlreadyExists)
			return
		}
		log.Error("failed to create user", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgRegistrationSuccess, nil)
}
