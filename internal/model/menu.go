package model

// MenuItem represents a dish on the menu. Menu data is static reference
// data and is never mutated at runtime.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// DeliveryZone represents a delivery area with its fee. The zone with a
// zero fee is the business's own base location.
type DeliveryZone struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartLine is a single cart entry. No two lines in a cart reference the
// same menu item ID.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}
