package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"checkcheck/internal/export"
	"checkcheck/internal/model"
	"checkcheck/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminHandler handles the password-gated order-management surface.
type AdminHandler struct {
	service  service.OrderService
	sessions *Sessions
	password string
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.OrderService, sessions *Sessions, password string, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		sessions: sessions,
		password: password,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests. This is a single shared
// secret, not per-admin authentication; there is no lockout or attempt
// logging beyond the request log.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.Password != h.password {
		writeError(w, http.StatusUnauthorized, "Invalid password", h.logger)
		return
	}

	h.sessions.SetAdmin(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /api/admin/logout requests.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearAdmin(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// List handles GET /api/admin/orders requests, newest first, optionally
// filtered with ?status=.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	orders, err := h.service.ListAll(r.Context(), status)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, model.ErrInvalidStatus.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status requests.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, model.ErrInvalidStatus.Message, h.logger)
		case errors.Is(err, model.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, model.ErrOrderNotFound.Message, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to update order status", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Export handles GET /api/admin/orders/export requests. Formats xlsx and
// csv export every order, one row each; pdf takes ?date=YYYY-MM-DD and
// produces the daily summary document.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	orders, err := h.service.ListAll(r.Context(), "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
		if err := export.WriteXLSX(w, orders); err != nil {
			h.logger.Error().Err(err).Msg("xlsx export failed")
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
		if err := export.WriteCSV(w, orders); err != nil {
			h.logger.Error().Err(err).Msg("csv export failed")
		}

	case "pdf":
		day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD", h.logger)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="orders_%s.pdf"`, day.Format("2006-01-02")))
		if err := export.WriteDailyPDF(w, day, orders); err != nil {
			h.logger.Error().Err(err).Msg("pdf export failed")
		}

	default:
		writeError(w, http.StatusBadRequest, "format must be xlsx, csv or pdf", h.logger)
	}
}
