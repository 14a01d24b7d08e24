package handler

import "github.com/gin-gonic/gin"

// GetTerminalID extracts the terminal ID from the Gin context
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
