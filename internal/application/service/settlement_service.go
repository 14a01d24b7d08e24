package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/infrastructure/memory"
	"github.com/andespos/terminal-api/pkg/apperror"
	"github.com/andespos/terminal-api/pkg/money"
)

// SettlementService mutates the tender lines of a terminal's checkout session
// and exposes the derived paid/remaining/change figures.
type SettlementService struct {
	store    *memory.SessionStore
	methods  gateway.PaymentMethodGateway
	cashCode string
}

// NewSettlementService creates a new settlement service
func NewSettlementService(store *memory.SessionStore, methods gateway.PaymentMethodGateway, cashCode string) *SettlementService {
	return &SettlementService{store: store, methods: methods, cashCode: cashCode}
}

// AddTenderLine appends a tender line defaulted to an unused payment method
// and the currently remaining balance.
func (s *SettlementService) AddTenderLine(ctx context.Context, terminalID string) (*CheckoutView, error) {
	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, err
	}

	var view *CheckoutView
	err = s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.Settlement.AddLine(methods, sess.Cart.Totals().Gross)
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveTenderLine removes the line at index. The settlement may become empty;
// it then simply cannot submit until a line is re-added.
func (s *SettlementService) RemoveTenderLine(terminalID string, index int) (*CheckoutView, error) {
	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if !sess.Settlement.RemoveLine(index) {
			return apperror.NewBadRequestError("Invalid tender line index")
		}
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetAmount replaces the amount of the line at index. Over- and under-payment
// are allowed; only negative amounts are rejected.
func (s *SettlementService) SetAmount(terminalID string, index int, amount int64) (*CheckoutView, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if !sess.Settlement.SetAmount(index, amount) {
			return apperror.NewBadRequestError("Invalid tender line index")
		}
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetMethod replaces the payment method of the line at index, resolving the
// method from the backend's configured list.
func (s *SettlementService) SetMethod(ctx context.Context, terminalID string, index int, methodID uuid.UUID) (*CheckoutView, error) {
	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, err
	}

	var method *entity.PaymentMethod
	for i := range methods {
		if methods[i].ID == methodID {
			method = &methods[i]
			break
		}
	}
	if method == nil {
		return nil, apperror.NewNotFoundError("Payment method")
	}

	var view *CheckoutView
	err = s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if !sess.Settlement.SetMethod(index, *method) {
			return apperror.NewBadRequestError("Invalid tender line index")
		}
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ApplyQuickCash sets the first cash tender line to the tapped suggestion
// amount. When the settlement holds no cash line the tap is a no-op.
func (s *SettlementService) ApplyQuickCash(terminalID string, amount int64) (*CheckoutView, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.Settlement.ApplyQuickCash(s.cashCode, amount)
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Suggestions proposes cash amounts for the current cart total.
func (s *SettlementService) Suggestions(terminalID string) ([]int64, error) {
	var suggestions []int64
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		suggestions = money.SuggestTenders(sess.Cart.Totals().Gross)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
