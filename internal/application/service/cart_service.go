package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/infrastructure/memory"
	"github.com/andespos/terminal-api/pkg/apperror"
)

// CartService mutates the cart of a terminal's checkout session. All pricing
// is derived from the lines on read; nothing is cached.
type CartService struct {
	store   *memory.SessionStore
	catalog gateway.CatalogGateway
}

// NewCartService creates a new cart service
func NewCartService(store *memory.SessionStore, catalog gateway.CatalogGateway) *CartService {
	return &CartService{store: store, catalog: catalog}
}

// CartView is a point-in-time copy of the cart with recomputed totals.
type CartView struct {
	Lines  []entity.CartLine `json:"lines"`
	Totals entity.CartTotals `json:"totals"`
}

func newCartView(cart *entity.Cart) *CartView {
	lines := make([]entity.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return &CartView{Lines: lines, Totals: cart.Totals()}
}

// AddItem fetches the product from the catalog and adds it to the cart,
// merging into an existing line for the same product. For stock-tracked
// products the requested quantity is gated against the catalog's stock figure
// before the line is touched.
func (s *CartService) AddItem(ctx context.Context, terminalID string, productID uuid.UUID, quantity decimal.Decimal) (*CartView, error) {
	if quantity.Sign() <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	var view *CartView
	err = s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}

		if product.TrackStock {
			wanted := sess.Cart.QuantityOf(product.ID).Add(quantity)
			if wanted.GreaterThan(decimal.NewFromInt(product.Stock)) {
				return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for %s", product.Name))
			}
		}

		sess.Cart.AddLine(*product, quantity)
		sess.MarkEditing()
		view = newCartView(&sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateQuantity replaces a line's quantity. Non-positive quantities remove
// the line; a cart never carries a zero-quantity line into its totals.
func (s *CartService) UpdateQuantity(terminalID string, productID uuid.UUID, quantity decimal.Decimal) (*CartView, error) {
	var view *CartView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if !sess.Cart.UpdateQuantity(productID, quantity) {
			return apperror.NewNotFoundError("Cart line")
		}
		sess.MarkEditing()
		view = newCartView(&sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem removes a line entirely.
func (s *CartService) RemoveItem(terminalID string, productID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if !sess.Cart.RemoveLine(productID) {
			return apperror.NewNotFoundError("Cart line")
		}
		sess.MarkEditing()
		view = newCartView(&sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Clear drops every cart line.
func (s *CartService) Clear(terminalID string) (*CartView, error) {
	var view *CartView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.Cart.Clear()
		sess.MarkEditing()
		view = newCartView(&sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetCart returns the current cart with freshly computed totals.
func (s *CartService) GetCart(terminalID string) (*CartView, error) {
	var view *CartView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		view = newCartView(&sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
