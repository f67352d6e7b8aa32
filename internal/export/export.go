// Package export renders fetched orders into spreadsheet, delimited-text
// and PDF documents for the admin dashboard. It performs no queries of
// its own.
package export

import (
	"fmt"
	"strings"
	"time"

	"checkcheck/internal/model"
)

// timeLayout is the timestamp format used across all export formats.
const timeLayout = "2006-01-02 15:04"

// header is the fixed column set, one row per order.
var header = []string{
	"Order ID",
	"Customer",
	"Phone",
	"Location",
	"Address",
	"Items",
	"Subtotal",
	"Delivery Fee",
	"Total",
	"Status",
	"Created At",
	"Updated At",
}

// row renders one order into the fixed column set.
func row(o model.Order) []string {
	return []string{
		idPrefix(o),
		o.CustomerName,
		o.CustomerPhone,
		o.DeliveryZone,
		o.CustomerAddress,
		itemSummary(o),
		fmt.Sprintf("%.2f", o.Subtotal),
		fmt.Sprintf("%.2f", o.DeliveryFee),
		fmt.Sprintf("%.2f", o.Total),
		string(o.Status),
		o.CreatedAt.Format(timeLayout),
		o.UpdatedAt.Format(timeLayout),
	}
}

// idPrefix returns the short order reference shown to staff.
func idPrefix(o model.Order) string {
	id := o.ID.String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// itemSummary renders the line items as "Regular x2; Loaded x1".
func itemSummary(o model.Order) string {
	parts := make([]string, len(o.Items))
	for i, item := range o.Items {
		parts[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}
	return strings.Join(parts, "; ")
}

// filterByDay returns the orders created on the given calendar day.
func filterByDay(orders []model.Order, day time.Time) []model.Order {
	var out []model.Order
	y, m, d := day.Date()
	for _, o := range orders {
		oy, om, od := o.CreatedAt.Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}
