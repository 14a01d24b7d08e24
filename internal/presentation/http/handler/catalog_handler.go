package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/request"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
	"github.com/andespos/terminal-api/pkg/pagination"
)

// CatalogHandler handles catalog proxy HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Search handles searching the backend catalog
func (h *CatalogHandler) Search(c *gin.Context) {
	var req request.ProductSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.catalogService.SearchProducts(c.Request.Context(), &gateway.ProductSearchParams{
		Search: req.Search,
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}
