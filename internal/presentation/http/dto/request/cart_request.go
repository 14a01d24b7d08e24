package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds a product to the cart. Quantity defaults to one unit
// and may be fractional for weighed goods.
type AddItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  *decimal.Decimal `json:"quantity"`
}

// QuantityOrDefault returns the requested quantity, one when omitted.
func (r *AddItemRequest) QuantityOrDefault() decimal.Decimal {
	if r.Quantity == nil {
		return decimal.NewFromInt(1)
	}
	return *r.Quantity
}

// UpdateQuantityRequest replaces a cart line's quantity. A non-positive value
// removes the line.
type UpdateQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}
