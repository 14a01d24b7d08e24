package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
)

// TerminalIDHeader names the header carrying the POS terminal identity.
const TerminalIDHeader = "X-Terminal-ID"

// TerminalMiddleware requires a terminal identity on every POS route and puts
// it in the Gin context. Each terminal owns exactly one checkout session.
func TerminalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		terminalID := strings.TrimSpace(c.GetHeader(TerminalIDHeader))
		if terminalID == "" {
			response.BadRequest(c, "Terminal identity required")
			c.Abort()
			return
		}

		c.Set("terminal_id", terminalID)
		c.Next()
	}
}

// GetTerminalID retrieves the terminal ID from gin context
func GetTerminalID(c *gin.Context) string {
	terminalID, exists := c.Get("terminal_id")
	if !exists {
		return ""
	}
	id, ok := terminalID.(string)
	if !ok {
		return ""
	}
	return id
}
