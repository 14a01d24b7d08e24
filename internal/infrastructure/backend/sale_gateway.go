package backend

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
)

// SaleGateway submits finalized sales to the backend. One request per call;
// the caller owns any retry decision.
type SaleGateway struct {
	client *Client
}

// NewSaleGateway creates a sale gateway over the shared client.
func NewSaleGateway(client *Client) *SaleGateway {
	return &SaleGateway{client: client}
}

// CreateSale posts the sale and returns the receipt with the assigned folio.
func (g *SaleGateway) CreateSale(ctx context.Context, req *gateway.SaleRequest) (*entity.Receipt, error) {
	var receipt entity.Receipt
	if err := g.client.post(ctx, "/sales", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
