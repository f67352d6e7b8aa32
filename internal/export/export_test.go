package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"checkcheck/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testOrders() []model.Order {
	created := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	return []model.Order{
		{
			ID:              uuid.MustParse("aaaaaaaa-1111-2222-3333-444444444444"),
			CustomerName:    "Kofi Mensah",
			CustomerPhone:   "0241234567",
			CustomerAddress: `House 5, "Boundary" Road`,
			DeliveryZone:    "East Legon",
			Items: []model.OrderItem{
				{ID: "regular", Name: "Regular", Price: 60, Quantity: 2},
				{ID: "loaded", Name: "Loaded", Price: 80, Quantity: 1},
			},
			Subtotal:    200,
			DeliveryFee: 20,
			Total:       220,
			Status:      model.StatusPending,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:            uuid.MustParse("bbbbbbbb-5555-6666-7777-888888888888"),
			CustomerName:  "Ama Serwaa",
			CustomerPhone: "0206819878",
			DeliveryZone:  "Madina",
			Items: []model.OrderItem{
				{ID: "odogwu", Name: "Odogwu", Price: 120, Quantity: 1},
			},
			Subtotal:    120,
			DeliveryFee: 30,
			Total:       150,
			Status:      model.StatusDelivered,
			CreatedAt:   created.Add(24 * time.Hour),
			UpdatedAt:   created.Add(26 * time.Hour),
		},
	}
}

func TestItemSummary(t *testing.T) {
	orders := testOrders()

	assert.Equal(t, "Regular x2; Loaded x1", itemSummary(orders[0]))
	assert.Equal(t, "Odogwu x1", itemSummary(orders[1]))
	assert.Equal(t, "", itemSummary(model.Order{}))
}

func TestIDPrefix(t *testing.T) {
	assert.Equal(t, "aaaaaaaa", idPrefix(testOrders()[0]))
}

func TestFilterByDay(t *testing.T) {
	orders := testOrders()

	day1 := filterByDay(orders, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.Len(t, day1, 1)
	assert.Equal(t, "Kofi Mensah", day1[0].CustomerName)

	day2 := filterByDay(orders, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, day2, 1)
	assert.Equal(t, "Ama Serwaa", day2[0].CustomerName)

	assert.Empty(t, filterByDay(orders, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testOrders()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, header, records[0])

	first := records[1]
	assert.Equal(t, "aaaaaaaa", first[0])
	assert.Equal(t, "Kofi Mensah", first[1])
	assert.Equal(t, "0241234567", first[2])
	assert.Equal(t, "East Legon", first[3])
	// Quotes in the address survive CSV quoting.
	assert.Equal(t, `House 5, "Boundary" Road`, first[4])
	assert.Equal(t, "Regular x2; Loaded x1", first[5])
	assert.Equal(t, "200.00", first[6])
	assert.Equal(t, "20.00", first[7])
	assert.Equal(t, "220.00", first[8])
	assert.Equal(t, "pending", first[9])
	assert.Equal(t, "2026-08-30 14:30", first[10])
}

func TestWriteCSV_NoOrders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, header, records[0])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testOrders()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Ama Serwaa", rows[2][1])
	assert.Equal(t, "delivered", rows[2][9])
}

func TestWriteDailyPDF(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, WriteDailyPDF(&buf, day, testOrders()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteDailyPDF_EmptyDay(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, WriteDailyPDF(&buf, day, testOrders()))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
}
