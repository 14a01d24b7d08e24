package gateway

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
)

// PaymentMethodGateway lists the tender options configured in the backend.
type PaymentMethodGateway interface {
	List(ctx context.Context) ([]entity.PaymentMethod, error)
}
