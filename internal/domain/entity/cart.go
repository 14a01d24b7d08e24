package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product in the cart. Unit prices are captured when the line
// is created and stay fixed for the life of the cart.
type CartLine struct {
	Product        ProductSnapshot `json:"product"`
	Quantity       decimal.Decimal `json:"quantity"` // Fractional for weighed goods
	UnitNetPrice   int64           `json:"unit_net_price"`
	UnitGrossPrice int64           `json:"unit_gross_price"`
}

// NetAmount returns the line's net total rounded to the nearest peso.
func (l *CartLine) NetAmount() int64 {
	return decimal.NewFromInt(l.UnitNetPrice).Mul(l.Quantity).Round(0).IntPart()
}

// TaxAmount returns the line's tax total rounded to the nearest peso.
func (l *CartLine) TaxAmount() int64 {
	return decimal.NewFromInt(l.UnitGrossPrice - l.UnitNetPrice).Mul(l.Quantity).Round(0).IntPart()
}

// GrossAmount is net plus tax, so line gross never drifts from its parts.
func (l *CartLine) GrossAmount() int64 {
	return l.NetAmount() + l.TaxAmount()
}

// CartTotals is the derived pricing of a cart. Gross is always Net + Tax.
type CartTotals struct {
	Net   int64 `json:"net"`
	Tax   int64 `json:"tax"`
	Gross int64 `json:"gross"`
}

// Cart holds the lines of the sale being built at one terminal. Lines keep
// insertion order; totals are recomputed from the lines on every call and are
// never cached.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddLine merges the product into an existing line when one exists for the
// same product ID, otherwise appends a new line capturing current prices.
// Callers validate quantity positivity before calling.
func (c *Cart) AddLine(p ProductSnapshot, quantity decimal.Decimal) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity = c.Lines[i].Quantity.Add(quantity)
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		Product:        p,
		Quantity:       quantity,
		UnitNetPrice:   p.NetPrice,
		UnitGrossPrice: p.GrossPrice,
	})
}

// QuantityOf returns the current quantity for a product, zero if absent.
func (c *Cart) QuantityOf(productID uuid.UUID) decimal.Decimal {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return c.Lines[i].Quantity
		}
	}
	return decimal.Zero
}

// UpdateQuantity replaces a line's quantity. A non-positive quantity removes
// the line outright; zero-quantity lines never persist into totals. Returns
// false when no line exists for the product.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity decimal.Decimal) bool {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			if quantity.Sign() <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RemoveLine removes the line for a product. Returns false when absent.
func (c *Cart) RemoveLine(productID uuid.UUID) bool {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Totals recomputes net, tax and gross from the current lines.
func (c *Cart) Totals() CartTotals {
	var totals CartTotals
	for i := range c.Lines {
		totals.Net += c.Lines[i].NetAmount()
		totals.Tax += c.Lines[i].TaxAmount()
	}
	totals.Gross = totals.Net + totals.Tax
	return totals
}
