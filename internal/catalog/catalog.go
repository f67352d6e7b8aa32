// Package catalog serves the static menu and delivery-zone reference data.
package catalog

import (
	"sort"
	"strings"

	"checkcheck/internal/model"
)

// Items returns all menu items.
func Items() []model.MenuItem {
	out := make([]model.MenuItem, len(menuItems))
	copy(out, menuItems)
	return out
}

// ItemByID returns the menu item with the given ID, or nil if unknown.
func ItemByID(id string) *model.MenuItem {
	for i := range menuItems {
		if menuItems[i].ID == id {
			item := menuItems[i]
			return &item
		}
	}
	return nil
}

// Zones returns all delivery zones sorted by name.
func Zones() []model.DeliveryZone {
	out := make([]model.DeliveryZone, len(deliveryZones))
	copy(out, deliveryZones)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ZoneByName returns the delivery zone matching name, case-insensitively,
// or nil if no zone matches.
func ZoneByName(name string) *model.DeliveryZone {
	for i := range deliveryZones {
		if strings.EqualFold(deliveryZones[i].Name, name) {
			zone := deliveryZones[i]
			return &zone
		}
	}
	return nil
}

// SearchZones returns zones whose name contains q, case-insensitively,
// sorted by name. An empty q returns all zones.
func SearchZones(q string) []model.DeliveryZone {
	if q == "" {
		return Zones()
	}
	q = strings.ToLower(q)
	var out []model.DeliveryZone
	for _, z := range Zones() {
		if strings.Contains(strings.ToLower(z.Name), q) {
			out = append(out, z)
		}
	}
	return out
}
