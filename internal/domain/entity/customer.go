package entity

import "github.com/google/uuid"

// Customer is the identity bound to a sale. Boleta sales may omit it, in which
// case the consumidor-final placeholder is substituted at submission time.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	TaxID string    `json:"tax_id"` // RUT, e.g. "12.345.678-5"
}
