package handler

import (
	"encoding/json"
	"net/http"

	"checkcheck/internal/cart"
	"checkcheck/internal/catalog"
	"checkcheck/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler manages the session-backed cart.
type CartHandler struct {
	sessions *Sessions
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(sessions *Sessions, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the cart state plus derived totals returned by every
// cart endpoint.
type cartResponse struct {
	Items       []model.CartLine    `json:"items"`
	Zone        *model.DeliveryZone `json:"zone"`
	Subtotal    float64             `json:"subtotal"`
	DeliveryFee float64             `json:"deliveryFee"`
	Total       float64             `json:"total"`
	ItemCount   int                 `json:"itemCount"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	totals := c.Totals()
	items := c.Lines
	if items == nil {
		items = []model.CartLine{}
	}
	return cartResponse{
		Items:       items,
		Zone:        c.Zone,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		ItemCount:   c.ItemCount(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(h.sessions.Cart(r)))
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required", h.logger)
		return
	}

	item := catalog.ItemByID(req.ItemID)
	if item == nil {
		writeError(w, http.StatusNotFound, model.ErrMenuItemNotFound.Message, h.logger)
		return
	}

	c := h.sessions.Cart(r)
	c.AddItem(*item)
	h.sessions.SaveCart(w, r, c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// UpdateItem handles PUT /api/cart/items/{id} requests. A quantity of
// zero or below removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessions.Cart(r)
	c.UpdateQuantity(itemID, req.Quantity)
	h.sessions.SaveCart(w, r, c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	c := h.sessions.Cart(r)
	c.RemoveItem(itemID)
	h.sessions.SaveCart(w, r, c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// SetZone handles PUT /api/cart/zone requests. A null or empty name
// clears the selection.
func (h *CartHandler) SetZone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessions.Cart(r)

	if req.Name == nil || *req.Name == "" {
		c.SetZone(nil)
	} else {
		zone := catalog.ZoneByName(*req.Name)
		if zone == nil {
			writeError(w, http.StatusBadRequest, model.ErrZoneNotFound.Message, h.logger)
			return
		}
		c.SetZone(zone)
	}

	h.sessions.SaveCart(w, r, c)
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.Cart(r)
	c.Clear()
	h.sessions.SaveCart(w, r, c)

	writeJSON(w, http.StatusOK, toCartResponse(c))
}
