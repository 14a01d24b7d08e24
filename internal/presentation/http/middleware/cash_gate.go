package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
	"github.com/andespos/terminal-api/pkg/apperror"
)

// CashGate blocks the POS surface while a terminal's register is closed. The
// backend answer is cached briefly per terminal so cart edits don't hammer the
// cash-session endpoint.
type CashGate struct {
	sessions gateway.CashSessionGateway
	ttl      time.Duration

	mu    sync.Mutex
	cache map[string]cashGateEntry
}

type cashGateEntry struct {
	open      bool
	checkedAt time.Time
}

// NewCashGate creates a register gate with the given cache TTL.
func NewCashGate(sessions gateway.CashSessionGateway, ttl time.Duration) *CashGate {
	return &CashGate{
		sessions: sessions,
		ttl:      ttl,
		cache:    make(map[string]cashGateEntry),
	}
}

func (g *CashGate) isOpen(c *gin.Context, terminalID string) (bool, error) {
	g.mu.Lock()
	entry, ok := g.cache[terminalID]
	g.mu.Unlock()
	if ok && time.Since(entry.checkedAt) < g.ttl {
		return entry.open, nil
	}

	session, err := g.sessions.Current(c.Request.Context(), terminalID)
	if err != nil {
		return false, err
	}
	open := session != nil && session.Open

	g.mu.Lock()
	g.cache[terminalID] = cashGateEntry{open: open, checkedAt: time.Now()}
	g.mu.Unlock()

	return open, nil
}

// Middleware returns a Gin middleware enforcing the open-register precondition.
func (g *CashGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		terminalID := GetTerminalID(c)
		if terminalID == "" {
			response.BadRequest(c, "Terminal identity required")
			c.Abort()
			return
		}

		open, err := g.isOpen(c, terminalID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !open {
			response.Error(c, apperror.ErrRegisterClosed)
			c.Abort()
			return
		}

		c.Next()
	}
}
