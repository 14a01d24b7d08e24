package gateway

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
)

// CashSessionGateway reports whether the register is open for a terminal.
// A closed register blocks the whole checkout surface.
type CashSessionGateway interface {
	Current(ctx context.Context, terminalID string) (*entity.CashSession, error)
}
