package pricing

import (
	"math"
	"testing"

	"checkcheck/internal/model"

	"github.com/stretchr/testify/assert"
)

func line(id string, price float64, qty int) model.CartLine {
	return model.CartLine{
		Item:     model.MenuItem{ID: id, Name: id, Price: price},
		Quantity: qty,
	}
}

func TestQuote_Breakdown(t *testing.T) {
	lines := []model.CartLine{
		line("regular", 60, 2),
		line("loaded", 80, 1),
	}
	zone := &model.DeliveryZone{Name: "East Legon", Price: 20}

	totals := Quote(lines, zone)

	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.DeliveryFee)
	assert.Equal(t, 220.0, totals.Total)
}

func TestQuote_EmptyCart(t *testing.T) {
	totals := Quote(nil, nil)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 0.0, totals.Total)
}

func TestQuote_NilZoneMeansNoFee(t *testing.T) {
	totals := Quote([]model.CartLine{line("odogwu", 120, 1)}, nil)

	assert.Equal(t, 120.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 120.0, totals.Total)
}

func TestQuote_FreeDeliveryZone(t *testing.T) {
	zone := &model.DeliveryZone{Name: "East Legon (Boundary Road)", Price: 0}
	totals := Quote([]model.CartLine{line("regular", 60, 1)}, zone)

	assert.Equal(t, 60.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 60.0, totals.Total)
}

func TestQuote_MalformedInputsCoerceToZero(t *testing.T) {
	tests := []struct {
		name     string
		lines    []model.CartLine
		zone     *model.DeliveryZone
		expected Totals
	}{
		{
			name:     "NaN price",
			lines:    []model.CartLine{line("x", math.NaN(), 3)},
			expected: Totals{Subtotal: 0, DeliveryFee: 0, Total: 0},
		},
		{
			name:     "infinite price",
			lines:    []model.CartLine{line("x", math.Inf(1), 1)},
			expected: Totals{Subtotal: 0, DeliveryFee: 0, Total: 0},
		},
		{
			name:     "negative quantity counts as zero",
			lines:    []model.CartLine{line("x", 60, -2), line("y", 80, 1)},
			expected: Totals{Subtotal: 80, DeliveryFee: 0, Total: 80},
		},
		{
			name:     "NaN zone fee",
			lines:    []model.CartLine{line("x", 60, 1)},
			zone:     &model.DeliveryZone{Name: "bad", Price: math.NaN()},
			expected: Totals{Subtotal: 60, DeliveryFee: 0, Total: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Quote(tt.lines, tt.zone)
			assert.Equal(t, tt.expected, totals)
			assert.False(t, math.IsNaN(totals.Total))
		})
	}
}

func TestQuote_TotalIsSumOfParts(t *testing.T) {
	lines := []model.CartLine{
		line("regular", 59.99, 3),
		line("loaded", 80.50, 2),
	}
	zone := &model.DeliveryZone{Name: "Adenta", Price: 40}

	totals := Quote(lines, zone)

	assert.Equal(t, Round2(totals.Subtotal+totals.DeliveryFee), totals.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 220.0, Round2(220.0000001))
	assert.Equal(t, -1.55, Round2(-1.554))
}
