package service

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
)

// TerminalService exposes the backend facts a POS screen needs before selling:
// the configured tender options and whether the register is open.
type TerminalService struct {
	methods      gateway.PaymentMethodGateway
	cashSessions gateway.CashSessionGateway
}

// NewTerminalService creates a new terminal service
func NewTerminalService(methods gateway.PaymentMethodGateway, cashSessions gateway.CashSessionGateway) *TerminalService {
	return &TerminalService{methods: methods, cashSessions: cashSessions}
}

// PaymentMethods lists the tender options configured in the backend.
func (s *TerminalService) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.methods.List(ctx)
}

// CashSession returns the register session for a terminal.
func (s *TerminalService) CashSession(ctx context.Context, terminalID string) (*entity.CashSession, error) {
	return s.cashSessions.Current(ctx, terminalID)
}
