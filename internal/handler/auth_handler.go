package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkcheck/internal/model"
	"checkcheck/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles customer account requests.
type AuthHandler struct {
	service  service.AccountService
	sessions *Sessions
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AccountService, sessions *Sessions, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login requests. Login and signup are one
// operation; supplying name/address marks the request as a signup.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Phone == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "phone and password are required", h.logger)
		return
	}

	user, err := h.service.LoginOrSignup(r.Context(), req.Phone, req.Password, req.Name, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPhoneTaken):
			writeError(w, http.StatusConflict, err.Error(), h.logger)
		case errors.Is(err, model.ErrInvalidPassword):
			writeError(w, http.StatusUnauthorized, err.Error(), h.logger)
		case errors.Is(err, model.ErrSignupFieldsMissing):
			writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to log in", h.logger)
		}
		return
	}

	h.sessions.SetUser(w, r, user)
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearUser(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /api/auth/me requests.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not logged in", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/profile requests.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not logged in", h.logger)
		return
	}

	var req model.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Name == "" || req.Address == "" {
		writeError(w, http.StatusBadRequest, "name and address are required", h.logger)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), user.ID, req.Name, req.Address)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == model.ErrCodeUnauthorised {
			h.sessions.ClearUser(w, r)
			writeError(w, http.StatusUnauthorized, domainErr.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update profile", h.logger)
		return
	}

	h.sessions.SetUser(w, r, updated)
	writeJSON(w, http.StatusOK, updated)
}
