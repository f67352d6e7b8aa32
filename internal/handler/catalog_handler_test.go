package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkcheck/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_Menu(t *testing.T) {
	h := NewCatalogHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	h.Menu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []model.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 3)
}

func TestCatalogHandler_Zones(t *testing.T) {
	h := NewCatalogHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/zones", nil)
	rec := httptest.NewRecorder()
	h.Zones(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var zones []model.DeliveryZone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zones))
	assert.Len(t, zones, 70)
}

func TestCatalogHandler_ZonesFiltered(t *testing.T) {
	h := NewCatalogHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/zones?q=legon", nil)
	rec := httptest.NewRecorder()
	h.Zones(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var zones []model.DeliveryZone
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zones))
	require.NotEmpty(t, zones)
	for _, z := range zones {
		assert.Contains(t, z.Name, "Legon")
	}
}
