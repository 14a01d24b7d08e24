package request

import "github.com/google/uuid"

// UpdateTenderRequest edits a tender line: amount, method, or both.
type UpdateTenderRequest struct {
	Amount   *int64     `json:"amount"`
	MethodID *uuid.UUID `json:"method_id"`
}

// QuickCashRequest applies a tapped bill suggestion to the first cash line.
type QuickCashRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// SetCustomerRequest binds a customer to the sale. A null customer unbinds.
type SetCustomerRequest struct {
	Customer *CustomerPayload `json:"customer"`
}

// CustomerPayload is the customer identity as selected on the POS screen.
type CustomerPayload struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Name  string    `json:"name" binding:"required"`
	TaxID string    `json:"tax_id" binding:"required"`
}

// SetDocumentTypeRequest selects the DTE variant by its SII code.
type SetDocumentTypeRequest struct {
	Code int `json:"code" binding:"required"`
}

// ProductSearchRequest filters the catalog proxy.
type ProductSearchRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
