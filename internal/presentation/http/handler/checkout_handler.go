package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/request"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles settlement and submission HTTP requests
type CheckoutHandler struct {
	checkoutService   *service.CheckoutService
	settlementService *service.SettlementService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, settlementService *service.SettlementService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService:   checkoutService,
		settlementService: settlementService,
	}
}

// Status handles reading the full checkout view
func (h *CheckoutHandler) Status(c *gin.Context) {
	view, err := h.checkoutService.Status(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout retrieved successfully", response.NewCheckoutResponse(view))
}

// AddTender handles appending a tender line
func (h *CheckoutHandler) AddTender(c *gin.Context) {
	view, err := h.settlementService.AddTenderLine(c.Request.Context(), GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tender line added", response.NewCheckoutResponse(view))
}

// UpdateTender handles editing a tender line's amount and/or method
func (h *CheckoutHandler) UpdateTender(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid tender line index")
		return
	}

	var req request.UpdateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Amount == nil && req.MethodID == nil {
		response.BadRequest(c, "Nothing to update")
		return
	}

	terminalID := GetTerminalID(c)
	var view *service.CheckoutView

	if req.MethodID != nil {
		view, err = h.settlementService.SetMethod(c.Request.Context(), terminalID, index, *req.MethodID)
		if err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.Amount != nil {
		view, err = h.settlementService.SetAmount(terminalID, index, *req.Amount)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	response.OK(c, "Tender line updated", response.NewCheckoutResponse(view))
}

// RemoveTender handles removing a tender line
func (h *CheckoutHandler) RemoveTender(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid tender line index")
		return
	}

	view, err := h.settlementService.RemoveTenderLine(GetTerminalID(c), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tender line removed", response.NewCheckoutResponse(view))
}

// QuickCash handles applying a tapped bill suggestion to the first cash line
func (h *CheckoutHandler) QuickCash(c *gin.Context) {
	var req request.QuickCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.settlementService.ApplyQuickCash(GetTerminalID(c), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quick cash applied", response.NewCheckoutResponse(view))
}

// Suggestions handles listing cash amounts for the current total
func (h *CheckoutHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.settlementService.Suggestions(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggestions retrieved successfully", suggestions)
}

// SetCustomer handles binding or unbinding the sale's customer
func (h *CheckoutHandler) SetCustomer(c *gin.Context) {
	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var customer *entity.Customer
	if req.Customer != nil {
		customer = &entity.Customer{
			ID:    req.Customer.ID,
			Name:  req.Customer.Name,
			TaxID: req.Customer.TaxID,
		}
	}

	view, err := h.checkoutService.SetCustomer(GetTerminalID(c), customer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated", response.NewCheckoutResponse(view))
}

// SetDocumentType handles selecting the DTE variant
func (h *CheckoutHandler) SetDocumentType(c *gin.Context) {
	var req request.SetDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.checkoutService.SetDocumentType(GetTerminalID(c), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document type updated", response.NewCheckoutResponse(view))
}

// Confirm handles submitting the sale to the backend
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	receipt, err := h.checkoutService.Submit(c.Request.Context(), GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale created successfully", response.NewReceiptResponse(receipt))
}

// Reset handles cancelling the sale in progress
func (h *CheckoutHandler) Reset(c *gin.Context) {
	view, err := h.checkoutService.Reset(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout reset", response.NewCheckoutResponse(view))
}

// EndSession handles releasing the terminal's session at cashier sign-off
func (h *CheckoutHandler) EndSession(c *gin.Context) {
	if err := h.checkoutService.EndSession(GetTerminalID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Terminal session ended", nil)
}
