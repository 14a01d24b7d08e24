package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
)

// TerminalHandler handles terminal environment HTTP requests
type TerminalHandler struct {
	terminalService *service.TerminalService
}

// NewTerminalHandler creates a new terminal handler
func NewTerminalHandler(terminalService *service.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminalService: terminalService}
}

// PaymentMethods handles listing the configured tender options
func (h *TerminalHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.terminalService.PaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment methods retrieved successfully", methods)
}

// CashSession handles reading the register state for this terminal
func (h *TerminalHandler) CashSession(c *gin.Context) {
	session, err := h.terminalService.CashSession(c.Request.Context(), GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash session retrieved successfully", session)
}
