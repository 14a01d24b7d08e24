package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andespos/terminal-api/internal/domain/entity"
)

// SaleItem is one cart line as the backend expects it.
type SaleItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SaleTender is one tender line as the backend expects it.
type SaleTender struct {
	MethodID uuid.UUID `json:"method_id"`
	Amount   int64     `json:"amount"`
}

// SaleRequest is the single submission contract with the sale collaborator.
type SaleRequest struct {
	TerminalID       string          `json:"terminal_id"`
	DocumentTypeCode int             `json:"document_type_code"`
	Customer         entity.Customer `json:"customer"`
	Items            []SaleItem      `json:"items"`
	Tenders          []SaleTender    `json:"tenders"`
}

// SaleGateway submits a finalized sale and returns the folio the backend
// assigned, or a structured error. Implementations must not retry; retries
// are user-driven and known to be idempotency-unsafe.
type SaleGateway interface {
	CreateSale(ctx context.Context, req *SaleRequest) (*entity.Receipt, error)
}
