package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/pkg/pagination"
)

// ProductSearchParams filters the catalog search proxy.
type ProductSearchParams struct {
	Search     string
	Pagination *pagination.PaginationParams
}

// CatalogGateway reads product records from the backend catalog. The terminal
// never mutates catalog state.
type CatalogGateway interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductSnapshot, error)
	SearchProducts(ctx context.Context, params *ProductSearchParams) ([]entity.ProductSnapshot, int64, error)
}
