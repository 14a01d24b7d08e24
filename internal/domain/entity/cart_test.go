package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func snapshot(name string, net, gross int64) ProductSnapshot {
	return ProductSnapshot{
		ID:         uuid.New(),
		Name:       name,
		SKU:        name,
		NetPrice:   net,
		GrossPrice: gross,
		TaxRate:    0.19,
	}
}

func TestCartAddLineMergesSameProduct(t *testing.T) {
	t.Parallel()

	var cart Cart
	bread := snapshot("pan", 840, 1000)

	cart.AddLine(bread, decimal.NewFromInt(1))
	cart.AddLine(bread, decimal.NewFromInt(1))

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	if !cart.QuantityOf(bread.ID).Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected quantity 2, got %s", cart.QuantityOf(bread.ID))
	}
}

func TestCartTotals(t *testing.T) {
	t.Parallel()

	var cart Cart
	cart.AddLine(snapshot("pan", 840, 1000), decimal.NewFromInt(2))
	cart.AddLine(snapshot("leche", 320, 380), decimal.NewFromInt(1))

	got := cart.Totals()
	want := CartTotals{Net: 2000, Tax: 380, Gross: 2380}
	if got != want {
		t.Errorf("Totals() = %+v, want %+v", got, want)
	}
}

func TestCartTotalsFractionalQuantity(t *testing.T) {
	t.Parallel()

	// Weighed goods: 0.750 kg at 1000 net / 1190 gross per kilo.
	var cart Cart
	cart.AddLine(snapshot("palta", 1000, 1190), decimal.RequireFromString("0.750"))

	got := cart.Totals()
	if got.Net != 750 {
		t.Errorf("Net = %d, want 750", got.Net)
	}
	if got.Tax != 143 { // 190 * 0.750 = 142.5, rounds half up
		t.Errorf("Tax = %d, want 143", got.Tax)
	}
	if got.Gross != got.Net+got.Tax {
		t.Errorf("Gross = %d, want net+tax = %d", got.Gross, got.Net+got.Tax)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Parallel()

	var cart Cart
	bread := snapshot("pan", 840, 1000)
	cart.AddLine(bread, decimal.NewFromInt(2))

	if !cart.UpdateQuantity(bread.ID, decimal.NewFromInt(5)) {
		t.Fatal("expected UpdateQuantity to find the line")
	}
	if !cart.QuantityOf(bread.ID).Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected quantity 5, got %s", cart.QuantityOf(bread.ID))
	}

	// Zero removes the line outright.
	if !cart.UpdateQuantity(bread.ID, decimal.Zero) {
		t.Fatal("expected UpdateQuantity to find the line")
	}
	if !cart.IsEmpty() {
		t.Error("expected cart to be empty after zero-quantity update")
	}

	if cart.UpdateQuantity(bread.ID, decimal.NewFromInt(1)) {
		t.Error("expected UpdateQuantity to report missing line")
	}
}

func TestCartRemoveLine(t *testing.T) {
	t.Parallel()

	var cart Cart
	bread := snapshot("pan", 840, 1000)
	milk := snapshot("leche", 320, 380)
	cart.AddLine(bread, decimal.NewFromInt(1))
	cart.AddLine(milk, decimal.NewFromInt(1))

	if !cart.RemoveLine(bread.ID) {
		t.Fatal("expected RemoveLine to find the line")
	}
	if cart.RemoveLine(bread.ID) {
		t.Error("expected RemoveLine to report missing line")
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Product.ID != milk.ID {
		t.Errorf("expected only the milk line to remain, got %d lines", len(cart.Lines))
	}
}

func TestCartLinePricesStayCaptured(t *testing.T) {
	t.Parallel()

	var cart Cart
	bread := snapshot("pan", 840, 1000)
	cart.AddLine(bread, decimal.NewFromInt(1))

	// A later add with a repriced snapshot merges quantity but keeps the
	// captured unit prices.
	repriced := bread
	repriced.NetPrice = 900
	repriced.GrossPrice = 1071
	cart.AddLine(repriced, decimal.NewFromInt(1))

	if got := cart.Lines[0].UnitNetPrice; got != 840 {
		t.Errorf("UnitNetPrice = %d, want captured 840", got)
	}
	if got := cart.Totals().Net; got != 1680 {
		t.Errorf("Net = %d, want 1680", got)
	}
}
