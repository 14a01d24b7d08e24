package entity

import (
	"github.com/andespos/terminal-api/internal/domain/enum"
)

// CheckoutSession is the state container for one terminal's sale in progress:
// the cart, its settlement, the selected document type and customer, and the
// submission state machine. One session exists per terminal; it is owned by
// the session store and only ever mutated under its lock.
type CheckoutSession struct {
	TerminalID   string             `json:"terminal_id"`
	Cart         Cart               `json:"cart"`
	Settlement   Settlement         `json:"settlement"`
	DocumentType enum.DocumentType  `json:"document_type"`
	Customer     *Customer          `json:"customer,omitempty"`
	State        enum.CheckoutState `json:"state"`
	LastReceipt  *Receipt           `json:"last_receipt,omitempty"`
	LastError    string             `json:"last_error,omitempty"`
}

// NewCheckoutSession returns a fresh session for a terminal, defaulting to a
// boleta sale with no customer bound.
func NewCheckoutSession(terminalID string) *CheckoutSession {
	return &CheckoutSession{
		TerminalID:   terminalID,
		DocumentType: enum.DocumentTypeBoleta,
		State:        enum.CheckoutStateIdle,
	}
}

// Submitting reports whether a sale submission is in flight. While true every
// mutation and any further submit must be refused.
func (s *CheckoutSession) Submitting() bool {
	return s.State == enum.CheckoutStateSubmitting
}

// MarkEditing moves the session into the editing state unless a submission is
// in flight.
func (s *CheckoutSession) MarkEditing() {
	if !s.Submitting() {
		s.State = enum.CheckoutStateEditing
	}
}

// Reset clears the cart, settlement, customer binding and error, returning
// the session to idle. The last receipt is kept for display until the next
// sale begins producing lines.
func (s *CheckoutSession) Reset() {
	s.Cart.Clear()
	s.Settlement.Clear()
	s.Customer = nil
	s.DocumentType = enum.DocumentTypeBoleta
	s.State = enum.CheckoutStateIdle
	s.LastError = ""
}
