package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/request"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles reading the current cart
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.cartService.GetCart(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved successfully", response.NewCartResponse(view))
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), GetTerminalID(c), req.ProductID, req.QuantityOrDefault())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", response.NewCartResponse(view))
}

// UpdateQuantity handles replacing a cart line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.UpdateQuantity(GetTerminalID(c), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart line updated", response.NewCartResponse(view))
}

// RemoveItem handles removing a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	view, err := h.cartService.RemoveItem(GetTerminalID(c), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart line removed", response.NewCartResponse(view))
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.cartService.Clear(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", response.NewCartResponse(view))
}
