package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/pkg/apperror"
)

// CashSessionGateway reads the register state for a terminal from the backend.
type CashSessionGateway struct {
	client *Client
}

// NewCashSessionGateway creates a cash-session gateway over the shared client.
func NewCashSessionGateway(client *Client) *CashSessionGateway {
	return &CashSessionGateway{client: client}
}

// Current fetches the register session for a terminal. A 404 from the backend
// means no session was ever opened; that is reported as no session, not an
// error, so callers treat it as a closed register.
func (g *CashSessionGateway) Current(ctx context.Context, terminalID string) (*entity.CashSession, error) {
	query := url.Values{}
	query.Set("terminal_id", terminalID)

	var session entity.CashSession
	if err := g.client.get(ctx, "/cash-sessions/current", query, &session); err != nil {
		if apperror.GetAppError(err).Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
