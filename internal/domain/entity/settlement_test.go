package entity

import (
	"testing"

	"github.com/andespos/terminal-api/internal/domain/enum"
	"github.com/google/uuid"
)

func testMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: uuid.New(), Code: "efectivo", Name: "Efectivo"},
		{ID: uuid.New(), Code: "tarjeta", Name: "Tarjeta"},
	}
}

func TestSettlementAddLineDefaults(t *testing.T) {
	t.Parallel()

	methods := testMethods()
	var s Settlement

	// First line defaults to the first method and the full total.
	s.AddLine(methods, 2380)
	if got := s.Lines[0].Method.Code; got != "efectivo" {
		t.Errorf("first line method = %q, want efectivo", got)
	}
	if got := s.Lines[0].Amount; got != 2380 {
		t.Errorf("first line amount = %d, want 2380", got)
	}

	// After trimming the cash line, a second line takes the next unused
	// method and pre-fills the rest to pay.
	s.SetAmount(0, 2000)
	s.AddLine(methods, 2380)
	if got := s.Lines[1].Method.Code; got != "tarjeta" {
		t.Errorf("second line method = %q, want tarjeta", got)
	}
	if got := s.Lines[1].Amount; got != 380 {
		t.Errorf("second line amount = %d, want 380", got)
	}

	// All methods in use: falls back to the first.
	s.AddLine(methods, 2380)
	if got := s.Lines[2].Method.Code; got != "efectivo" {
		t.Errorf("third line method = %q, want efectivo", got)
	}
	if got := s.Lines[2].Amount; got != 0 {
		t.Errorf("third line amount = %d, want 0", got)
	}
}

func TestSettlementSplitTender(t *testing.T) {
	t.Parallel()

	methods := testMethods()
	var s Settlement
	s.AddLine(methods, 2380)
	s.SetAmount(0, 2000)
	s.AddLine(methods, 2380)
	s.SetAmount(1, 500)

	if got := s.TotalPaid(); got != 2500 {
		t.Errorf("TotalPaid() = %d, want 2500", got)
	}
	if got := s.Remaining(2380); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
	if got := s.RawChange(2380); got != 120 {
		t.Errorf("RawChange() = %d, want 120", got)
	}
	if got := s.Change(2380); got != 120 {
		t.Errorf("Change() = %d, want 120", got)
	}
	if !s.CanSubmit(2380, enum.DocumentTypeBoleta, false) {
		t.Error("expected settlement to be submittable")
	}
}

func TestSettlementChangeIsCashRounded(t *testing.T) {
	t.Parallel()

	var s Settlement
	s.AddLine(testMethods(), 2383)
	s.SetAmount(0, 2500)

	if got := s.RawChange(2383); got != 117 {
		t.Errorf("RawChange() = %d, want 117", got)
	}
	if got := s.Change(2383); got != 120 {
		t.Errorf("Change() = %d, want legally rounded 120", got)
	}
}

func TestSettlementRemoveLine(t *testing.T) {
	t.Parallel()

	var s Settlement
	s.AddLine(testMethods(), 1000)

	if s.RemoveLine(1) {
		t.Error("expected out-of-range removal to fail")
	}
	if !s.RemoveLine(0) {
		t.Fatal("expected removal of the only line to succeed")
	}
	// Empty settlements are a normal editing state but can never submit.
	if s.CanSubmit(0, enum.DocumentTypeBoleta, false) {
		t.Error("expected empty settlement to be unsubmittable")
	}
}

func TestSettlementApplyQuickCash(t *testing.T) {
	t.Parallel()

	methods := testMethods()
	var s Settlement

	if s.ApplyQuickCash("efectivo", 5000) {
		t.Error("expected quick cash to no-op without a cash line")
	}

	s.AddLine(methods, 2380)
	if !s.ApplyQuickCash("efectivo", 5000) {
		t.Fatal("expected quick cash to hit the cash line")
	}
	if got := s.Lines[0].Amount; got != 5000 {
		t.Errorf("cash line amount = %d, want 5000", got)
	}
}

func TestSettlementCanSubmitCustomerRequirement(t *testing.T) {
	t.Parallel()

	var s Settlement
	s.AddLine(testMethods(), 1000)

	if s.CanSubmit(1000, enum.DocumentTypeFactura, false) {
		t.Error("expected factura without customer to be unsubmittable")
	}
	if !s.CanSubmit(1000, enum.DocumentTypeFactura, true) {
		t.Error("expected factura with customer to be submittable")
	}
	if !s.CanSubmit(1000, enum.DocumentTypeBoleta, false) {
		t.Error("expected boleta without customer to be submittable")
	}

	s.SetAmount(0, 900)
	if s.CanSubmit(1000, enum.DocumentTypeBoleta, false) {
		t.Error("expected underpaid settlement to be unsubmittable")
	}
}
