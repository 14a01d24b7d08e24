package response

import (
	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/pkg/money"
)

// CartResponse is the cart view with display-formatted totals. Formatted
// strings are for screens only; clients never parse them back.
type CartResponse struct {
	*service.CartView
	Formatted TotalsFormatted `json:"formatted"`
}

// TotalsFormatted carries es-CL rendered amounts for the receipt area.
type TotalsFormatted struct {
	Net   string `json:"net"`
	Tax   string `json:"tax"`
	Gross string `json:"gross"`
}

// NewCartResponse wraps a cart view for display.
func NewCartResponse(view *service.CartView) *CartResponse {
	return &CartResponse{
		CartView: view,
		Formatted: TotalsFormatted{
			Net:   money.Format(view.Totals.Net),
			Tax:   money.Format(view.Totals.Tax),
			Gross: money.Format(view.Totals.Gross),
		},
	}
}

// CheckoutResponse is the full checkout view with display-formatted figures.
type CheckoutResponse struct {
	*service.CheckoutView
	Formatted CheckoutFormatted `json:"formatted"`
}

// CheckoutFormatted carries es-CL rendered settlement figures.
type CheckoutFormatted struct {
	Gross     string `json:"gross"`
	TotalPaid string `json:"total_paid"`
	Remaining string `json:"remaining"`
	Change    string `json:"change"`
}

// NewCheckoutResponse wraps a checkout view for display.
func NewCheckoutResponse(view *service.CheckoutView) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutView: view,
		Formatted: CheckoutFormatted{
			Gross:     money.Format(view.Totals.Gross),
			TotalPaid: money.Format(view.TotalPaid),
			Remaining: money.Format(view.Remaining),
			Change:    money.Format(view.Change),
		},
	}
}

// ReceiptResponse is the confirmation shown after a successful sale.
type ReceiptResponse struct {
	*entity.Receipt
	ChangeFormatted string `json:"change_formatted"`
}

// NewReceiptResponse wraps a receipt for display.
func NewReceiptResponse(receipt *entity.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Receipt:         receipt,
		ChangeFormatted: money.Format(receipt.Change),
	}
}
