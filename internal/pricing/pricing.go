// Package pricing computes cart totals. It is purely functional: malformed
// inputs degrade to zero rather than failing, because the cart must always
// render a usable total.
package pricing

import (
	"math"

	"checkcheck/internal/model"
)

// Totals holds the priced breakdown of a cart.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Quote prices the given cart lines against the selected delivery zone.
// A nil zone means no delivery fee. The total is rounded to 2 decimal
// places.
func Quote(lines []model.CartLine, zone *model.DeliveryZone) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += sanitize(line.Item.Price) * float64(sanitizeQty(line.Quantity))
	}

	var fee float64
	if zone != nil {
		fee = sanitize(zone.Price)
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       Round2(subtotal + fee),
	}
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func sanitizeQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
