package backend

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
)

// PaymentMethodGateway lists tender options from the backend.
type PaymentMethodGateway struct {
	client *Client
}

// NewPaymentMethodGateway creates a payment-method gateway over the shared client.
func NewPaymentMethodGateway(client *Client) *PaymentMethodGateway {
	return &PaymentMethodGateway{client: client}
}

// List fetches the configured payment methods.
func (g *PaymentMethodGateway) List(ctx context.Context) ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	if err := g.client.get(ctx, "/payment-methods", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
