package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/pkg/pagination"
)

// CatalogGateway reads products from the backend catalog API.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates a catalog gateway over the shared client.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

// GetProduct fetches a single product snapshot by ID.
func (g *CatalogGateway) GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductSnapshot, error) {
	var product entity.ProductSnapshot
	if err := g.client.get(ctx, "/products/"+id.String(), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// searchPayload matches the backend's paginated product listing.
type searchPayload struct {
	Items      []entity.ProductSnapshot `json:"items"`
	Pagination struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
}

// SearchProducts queries the catalog with search text and pagination.
func (g *CatalogGateway) SearchProducts(ctx context.Context, params *gateway.ProductSearchParams) ([]entity.ProductSnapshot, int64, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	p := params.Pagination
	if p == nil {
		p = pagination.DefaultPagination()
	}
	p.Validate()
	query.Set("page", strconv.Itoa(p.Page))
	query.Set("per_page", strconv.Itoa(p.PerPage))

	var payload searchPayload
	if err := g.client.get(ctx, "/products", query, &payload); err != nil {
		return nil, 0, err
	}
	return payload.Items, payload.Pagination.Total, nil
}
