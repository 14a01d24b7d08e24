package entity

import (
	"time"

	"github.com/andespos/terminal-api/internal/domain/enum"
)

// Receipt is the confirmation returned to the cashier after the backend
// accepts a sale.
type Receipt struct {
	Folio        string            `json:"folio"`
	DocumentType enum.DocumentType `json:"document_type"`
	TotalGross   int64             `json:"total_gross"`
	TotalPaid    int64             `json:"total_paid"`
	Change       int64             `json:"change"` // Cash-rounded, ready to hand over
	IssuedAt     time.Time         `json:"issued_at"`
}
