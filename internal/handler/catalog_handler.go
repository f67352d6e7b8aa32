package handler

import (
	"net/http"

	"checkcheck/internal/catalog"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the static menu and delivery-zone data.
type CatalogHandler struct {
	logger zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		logger: logger.With().Str("handler", "catalog").Logger(),
	}
}

// Menu handles GET /api/menu requests.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Items())
}

// Zones handles GET /api/zones requests. An optional ?q= filters zones by
// name substring, mirroring the delivery page search box.
func (h *CatalogHandler) Zones(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, catalog.SearchZones(q))
}
