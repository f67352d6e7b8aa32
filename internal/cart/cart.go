// Package cart holds a customer's cart for one browsing session and the
// codec used to persist it in the session cookie across visits.
package cart

import (
	"checkcheck/internal/model"
	"checkcheck/internal/pricing"
)

// Cart holds the cart lines and the selected delivery zone.
type Cart struct {
	Lines []model.CartLine    `json:"lines"`
	Zone  *model.DeliveryZone `json:"zone,omitempty"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the given menu item. If a line for the item
// already exists its quantity is incremented; no two lines ever reference
// the same item ID.
func (c *Cart) AddItem(item model.MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == item.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, model.CartLine{Item: item, Quantity: 1})
}

// UpdateQuantity sets the quantity of the line for itemID. A quantity of
// zero or below removes the line, so UpdateQuantity(id, 0) is equivalent
// to RemoveItem(id).
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for itemID, if present.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetZone selects the delivery zone. A nil zone clears the selection.
func (c *Cart) SetZone(zone *model.DeliveryZone) {
	c.Zone = zone
}

// Clear empties the cart and clears the zone selection.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Zone = nil
}

// Totals prices the cart through the pricing engine.
func (c *Cart) Totals() pricing.Totals {
	return pricing.Quote(c.Lines, c.Zone)
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Snapshot returns a frozen copy of the cart lines as order items. Later
// menu price changes must not alter orders created from this snapshot.
func (c *Cart) Snapshot() []model.OrderItem {
	items := make([]model.OrderItem, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = model.OrderItem{
			ID:       line.Item.ID,
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		}
	}
	return items
}
