package cart

import (
	"encoding/json"
	"strconv"

	"checkcheck/internal/model"
)

// looseFloat decodes a JSON number that may have been stored as a string
// or corrupted. Unparseable values coerce to zero instead of failing.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = looseFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = looseFloat(v)
			return nil
		}
	}
	*f = 0
	return nil
}

type storedItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       looseFloat `json:"price"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
}

type storedLine struct {
	Item     storedItem `json:"item"`
	Quantity looseFloat `json:"quantity"`
}

type storedZone struct {
	Name  string     `json:"name"`
	Price looseFloat `json:"price"`
}

type storedCart struct {
	Lines []storedLine `json:"lines"`
	Zone  *storedZone  `json:"zone"`
}

// Encode serialises the cart for storage in the session cookie.
func Encode(c *Cart) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode rehydrates a cart from its stored form. Numeric fields are
// coerced defensively; a payload that cannot be parsed at all yields an
// empty cart and a non-nil error so the caller can log it.
func Decode(data string) (*Cart, error) {
	var stored storedCart
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return New(), err
	}

	c := New()
	for _, line := range stored.Lines {
		c.Lines = append(c.Lines, model.CartLine{
			Item: model.MenuItem{
				ID:          line.Item.ID,
				Name:        line.Item.Name,
				Description: line.Item.Description,
				Price:       float64(line.Item.Price),
				Image:       line.Item.Image,
				Category:    line.Item.Category,
			},
			Quantity: int(line.Quantity),
		})
	}
	if stored.Zone != nil {
		c.Zone = &model.DeliveryZone{
			Name:  stored.Zone.Name,
			Price: float64(stored.Zone.Price),
		}
	}
	return c, nil
}
