package entity

import (
	"github.com/andespos/terminal-api/internal/domain/enum"
	"github.com/andespos/terminal-api/pkg/money"
)

// TenderLine is one payment-method/amount pair contributing to settling the
// sale total. Amounts are whole pesos.
type TenderLine struct {
	Method PaymentMethod `json:"method"`
	Amount int64         `json:"amount"`
}

// Settlement is the ordered list of tender lines for the sale in progress.
// Over- and under-payment are normal editing states resolved by the derived
// Remaining and Change values, never rejected.
type Settlement struct {
	Lines []TenderLine `json:"lines"`
}

// AddLine appends a tender line defaulted to the first method not already in
// use (the first method overall when all are used) and to the currently
// remaining balance, so a second line pre-fills the rest to pay.
func (s *Settlement) AddLine(methods []PaymentMethod, totalGross int64) {
	line := TenderLine{Amount: s.Remaining(totalGross)}

	used := make(map[string]bool, len(s.Lines))
	for _, l := range s.Lines {
		used[l.Method.Code] = true
	}
	for _, m := range methods {
		if !used[m.Code] {
			line.Method = m
			break
		}
	}
	if line.Method.Code == "" && len(methods) > 0 {
		line.Method = methods[0]
	}

	s.Lines = append(s.Lines, line)
}

// RemoveLine removes the line at index. The settlement may transiently become
// empty; an empty settlement simply cannot submit until a line is re-added.
func (s *Settlement) RemoveLine(index int) bool {
	if index < 0 || index >= len(s.Lines) {
		return false
	}
	s.Lines = append(s.Lines[:index], s.Lines[index+1:]...)
	return true
}

// SetAmount replaces the amount of the line at index. Negative amounts are a
// caller error screened at the boundary.
func (s *Settlement) SetAmount(index int, amount int64) bool {
	if index < 0 || index >= len(s.Lines) {
		return false
	}
	s.Lines[index].Amount = amount
	return true
}

// SetMethod replaces the method of the line at index.
func (s *Settlement) SetMethod(index int, method PaymentMethod) bool {
	if index < 0 || index >= len(s.Lines) {
		return false
	}
	s.Lines[index].Method = method
	return true
}

// ApplyQuickCash sets the amount of the first cash tender line. No-op when
// the settlement holds no cash line. This is how bill suggestions feed back
// into the settlement.
func (s *Settlement) ApplyQuickCash(cashCode string, amount int64) bool {
	for i := range s.Lines {
		if s.Lines[i].Method.IsCash(cashCode) {
			s.Lines[i].Amount = amount
			return true
		}
	}
	return false
}

// Clear drops every tender line.
func (s *Settlement) Clear() {
	s.Lines = nil
}

// TotalPaid sums the tendered amounts.
func (s *Settlement) TotalPaid() int64 {
	var paid int64
	for _, l := range s.Lines {
		paid += l.Amount
	}
	return paid
}

// Remaining is the balance still to tender, never negative.
func (s *Settlement) Remaining(totalGross int64) int64 {
	if r := totalGross - s.TotalPaid(); r > 0 {
		return r
	}
	return 0
}

// RawChange is the overpayment before cash rounding, never negative.
func (s *Settlement) RawChange(totalGross int64) int64 {
	if c := s.TotalPaid() - totalGross; c > 0 {
		return c
	}
	return 0
}

// Change is the cash to hand back. Change is always disbursed in cash, so the
// legal rounding rule applies here and never to the sale totals themselves.
func (s *Settlement) Change(totalGross int64) int64 {
	return money.Round(s.RawChange(totalGross))
}

// CanSubmit reports whether the settlement is ready for submission: at least
// one tender line, nothing remaining, and the document type's customer
// requirement satisfied.
func (s *Settlement) CanSubmit(totalGross int64, docType enum.DocumentType, hasCustomer bool) bool {
	if len(s.Lines) == 0 {
		return false
	}
	if s.Remaining(totalGross) != 0 {
		return false
	}
	if docType.RequiresCustomer() && !hasCustomer {
		return false
	}
	return true
}
