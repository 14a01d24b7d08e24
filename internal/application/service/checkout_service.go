package service

import (
	"context"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/enum"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/infrastructure/memory"
	"github.com/andespos/terminal-api/pkg/apperror"
	"github.com/andespos/terminal-api/pkg/money"
)

// CheckoutService binds cart, settlement, customer and document type together
// and drives the submission state machine. Exactly one sale request leaves
// this service per confirm action; retries are user-driven.
type CheckoutService struct {
	store        *memory.SessionStore
	sales        gateway.SaleGateway
	cashSessions gateway.CashSessionGateway
	placeholder  entity.Customer
}

// NewCheckoutService creates a new checkout service. placeholder is the
// consumidor-final identity substituted on boleta sales with no customer bound.
func NewCheckoutService(
	store *memory.SessionStore,
	sales gateway.SaleGateway,
	cashSessions gateway.CashSessionGateway,
	placeholder entity.Customer,
) *CheckoutService {
	return &CheckoutService{
		store:        store,
		sales:        sales,
		cashSessions: cashSessions,
		placeholder:  placeholder,
	}
}

// CheckoutView is a point-in-time copy of the whole checkout: cart totals,
// tender lines and the derived settlement figures, all recomputed on build.
type CheckoutView struct {
	TerminalID   string              `json:"terminal_id"`
	State        enum.CheckoutState  `json:"state"`
	DocumentType enum.DocumentType   `json:"document_type"`
	Customer     *entity.Customer    `json:"customer,omitempty"`
	Totals       entity.CartTotals   `json:"totals"`
	Tenders      []entity.TenderLine `json:"tenders"`
	TotalPaid    int64               `json:"total_paid"`
	Remaining    int64               `json:"remaining"`
	Change       int64               `json:"change"`
	CanSubmit    bool                `json:"can_submit"`
	Suggestions  []int64             `json:"suggestions"`
	LastReceipt  *entity.Receipt     `json:"last_receipt,omitempty"`
	LastError    string              `json:"last_error,omitempty"`
}

// newCheckoutView derives every figure from the session's current lines.
func newCheckoutView(sess *entity.CheckoutSession) *CheckoutView {
	totals := sess.Cart.Totals()
	tenders := make([]entity.TenderLine, len(sess.Settlement.Lines))
	copy(tenders, sess.Settlement.Lines)

	return &CheckoutView{
		TerminalID:   sess.TerminalID,
		State:        sess.State,
		DocumentType: sess.DocumentType,
		Customer:     sess.Customer,
		Totals:       totals,
		Tenders:      tenders,
		TotalPaid:    sess.Settlement.TotalPaid(),
		Remaining:    sess.Settlement.Remaining(totals.Gross),
		Change:       sess.Settlement.Change(totals.Gross),
		CanSubmit:    sess.Settlement.CanSubmit(totals.Gross, sess.DocumentType, sess.Customer != nil),
		Suggestions:  money.SuggestTenders(totals.Gross),
		LastReceipt:  sess.LastReceipt,
		LastError:    sess.LastError,
	}
}

// Status returns the current checkout view for a terminal.
func (s *CheckoutService) Status(terminalID string) (*CheckoutView, error) {
	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetCustomer binds a customer to the sale, or unbinds with nil.
func (s *CheckoutService) SetCustomer(terminalID string, customer *entity.Customer) (*CheckoutView, error) {
	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.Customer = customer
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetDocumentType selects the DTE variant to issue.
func (s *CheckoutService) SetDocumentType(terminalID string, code int) (*CheckoutView, error) {
	docType := enum.DocumentType(code)
	if !docType.Valid() {
		return nil, apperror.NewBadRequestError("Unsupported document type code")
	}

	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.DocumentType = docType
		sess.MarkEditing()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Reset cancels the sale in progress, clearing cart and settlement.
func (s *CheckoutService) Reset(terminalID string) (*CheckoutView, error) {
	var view *CheckoutView
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		sess.Reset()
		view = newCheckoutView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// EndSession releases the terminal's session entirely, as at cashier
// sign-off. Unlike Reset nothing survives, not even the last receipt.
func (s *CheckoutService) EndSession(terminalID string) error {
	err := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.store.Drop(terminalID)
	return nil
}

// Submit sends the sale to the backend. Preconditions: register open, cart
// non-empty, settlement fully covering the total, and a customer bound when
// the document type demands one. While the request is in flight the session
// is locked against mutation and further submits; there is no automatic retry
// and no cancellation.
func (s *CheckoutService) Submit(ctx context.Context, terminalID string) (*entity.Receipt, error) {
	cashSession, err := s.cashSessions.Current(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if cashSession == nil || !cashSession.Open {
		return nil, apperror.ErrRegisterClosed
	}

	var req *gateway.SaleRequest
	err = s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if sess.Submitting() {
			return apperror.ErrSubmissionInFlight
		}
		if sess.Cart.IsEmpty() {
			return apperror.ErrCartEmpty
		}

		totals := sess.Cart.Totals()
		if len(sess.Settlement.Lines) == 0 || sess.Settlement.Remaining(totals.Gross) != 0 {
			return apperror.ErrSaleUnsettled
		}

		customer := s.placeholder
		if sess.Customer != nil {
			customer = *sess.Customer
		} else if sess.DocumentType.RequiresCustomer() {
			return apperror.ErrCustomerRequired
		}

		items := make([]gateway.SaleItem, len(sess.Cart.Lines))
		for i, line := range sess.Cart.Lines {
			items[i] = gateway.SaleItem{ProductID: line.Product.ID, Quantity: line.Quantity}
		}
		tenders := make([]gateway.SaleTender, len(sess.Settlement.Lines))
		for i, line := range sess.Settlement.Lines {
			tenders[i] = gateway.SaleTender{MethodID: line.Method.ID, Amount: line.Amount}
		}

		req = &gateway.SaleRequest{
			TerminalID:       terminalID,
			DocumentTypeCode: int(sess.DocumentType),
			Customer:         customer,
			Items:            items,
			Tenders:          tenders,
		}

		sess.State = enum.CheckoutStateSubmitting
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Network call runs without the session lock; the Submitting state keeps
	// every other operation out until the outcome lands.
	receipt, submitErr := s.sales.CreateSale(ctx, req)

	storeErr := s.store.With(terminalID, func(sess *entity.CheckoutSession) error {
		if submitErr != nil {
			// Settlement and cart stay untouched so the cashier can correct
			// and retry without re-entering tender amounts.
			sess.State = enum.CheckoutStateFailed
			sess.LastError = apperror.GetAppError(submitErr).Message
			return nil
		}

		// Change is disbursed in cash regardless of tender mix; round it here
		// before it reaches the drawer display.
		gross := sess.Cart.Totals().Gross
		receipt.TotalGross = gross
		receipt.TotalPaid = sess.Settlement.TotalPaid()
		receipt.Change = sess.Settlement.Change(gross)
		receipt.DocumentType = sess.DocumentType

		sess.Reset()
		sess.State = enum.CheckoutStateSucceeded
		sess.LastReceipt = receipt
		return nil
	})
	if submitErr != nil {
		return nil, submitErr
	}
	if storeErr != nil {
		return nil, storeErr
	}
	return receipt, nil
}
