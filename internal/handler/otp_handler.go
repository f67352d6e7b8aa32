package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkcheck/internal/model"
	"checkcheck/internal/service"

	"github.com/rs/zerolog"
)

// minPasswordLength is enforced at this boundary, before any store call.
const minPasswordLength = 6

// OTPHandler drives the SMS password-reset flow.
type OTPHandler struct {
	service service.PasswordResetService
	logger  zerolog.Logger
}

// NewOTPHandler creates a new OTP handler.
func NewOTPHandler(service service.PasswordResetService, logger zerolog.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		logger:  logger.With().Str("handler", "otp").Logger(),
	}
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send handles POST /otp/send requests.
func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "Phone number required", h.logger)
		return
	}

	if err := h.service.RequestCode(r.Context(), req.Phone); err != nil {
		if errors.Is(err, model.ErrSMSNotConfigured) {
			writeError(w, http.StatusInternalServerError, model.ErrSMSNotConfigured.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to send OTP", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "OTP sent via SMS"})
}

// Verify handles PUT /otp/verify requests: it checks the code and opens
// the reset window without consuming the code.
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Phone == "" || req.OTP == "" {
		writeError(w, http.StatusBadRequest, "Phone and OTP required", h.logger)
		return
	}

	if err := h.service.VerifyCode(r.Context(), req.Phone, req.OTP); err != nil {
		h.writeCodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "OTP verified"})
}

// Reset handles POST /otp/verify requests: the actual password reset.
func (h *OTPHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone       string `json:"phone"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Phone == "" || req.OTP == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Phone, OTP, and new password required", h.logger)
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters", h.logger)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Phone, req.OTP, req.NewPassword); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			h.writeCodeError(w, err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to reset password", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Password reset successfully"})
}

// writeCodeError maps code-validation failures to 400 responses.
func (h *OTPHandler) writeCodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNoActiveCode), errors.Is(err, model.ErrCodeHasExpired):
		writeError(w, http.StatusBadRequest, "Invalid or expired OTP", h.logger)
	case errors.Is(err, model.ErrCodeDoesNotMatch):
		writeError(w, http.StatusBadRequest, model.ErrCodeDoesNotMatch.Message, h.logger)
	default:
		writeError(w, http.StatusBadRequest, "Invalid or expired OTP", h.logger)
	}
}
