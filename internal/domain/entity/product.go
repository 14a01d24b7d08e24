package entity

import (
	"github.com/google/uuid"
)

// ProductSnapshot is the read-only view of a catalog item as served by the
// backend. The cart captures prices from it at add-time; later catalog edits
// never reprice an open cart.
type ProductSnapshot struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	NetPrice   int64     `json:"net_price"`   // Whole pesos, tax excluded
	GrossPrice int64     `json:"gross_price"` // Whole pesos, tax included
	TaxRate    float64   `json:"tax_rate"`
	Stock      int64     `json:"stock"`
	TrackStock bool      `json:"track_stock"`
}

// UnitTax returns the tax portion of a single unit's price.
func (p *ProductSnapshot) UnitTax() int64 {
	return p.GrossPrice - p.NetPrice
}
