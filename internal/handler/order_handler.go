package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkcheck/internal/model"
	"checkcheck/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles customer order requests.
type OrderHandler struct {
	service  service.OrderService
	sessions *Sessions
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, sessions *Sessions, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		sessions: sessions,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. The order is built from the
// caller's session cart; a successful submission clears the cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessions.Cart(r)

	order, err := h.service.Submit(r.Context(), &req, c)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, http.StatusBadRequest, domainErr.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create order", h.logger)
		return
	}

	h.sessions.ClearCart(w, r)
	writeJSON(w, http.StatusCreated, order)
}

// ListMine handles GET /api/orders requests: the logged-in customer's
// order history, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.User(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not logged in", h.logger)
		return
	}

	orders, err := h.service.ListForCustomer(r.Context(), user.Phone)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}
