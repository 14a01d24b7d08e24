package service

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/pkg/pagination"
)

// CatalogService proxies catalog reads for the POS screens. Products reach the
// cart through CartService; this service never mutates anything.
type CatalogService struct {
	catalog gateway.CatalogGateway
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog gateway.CatalogGateway) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// SearchProducts queries the backend catalog with search text and pagination.
func (s *CatalogService) SearchProducts(ctx context.Context, params *gateway.ProductSearchParams) (*pagination.PaginatedResult[entity.ProductSnapshot], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.catalog.SearchProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
