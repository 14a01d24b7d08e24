package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/domain/enum"
	"github.com/andespos/terminal-api/internal/domain/gateway"
	"github.com/andespos/terminal-api/internal/infrastructure/memory"
	"github.com/andespos/terminal-api/pkg/apperror"
)

type fakeCatalog struct {
	products map[uuid.UUID]entity.ProductSnapshot
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uuid.UUID) (*entity.ProductSnapshot, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeCatalog) SearchProducts(_ context.Context, _ *gateway.ProductSearchParams) ([]entity.ProductSnapshot, int64, error) {
	return nil, 0, nil
}

type fakeMethods struct {
	methods []entity.PaymentMethod
}

func (f *fakeMethods) List(_ context.Context) ([]entity.PaymentMethod, error) {
	return f.methods, nil
}

type fakeSales struct {
	lastRequest *gateway.SaleRequest
	receipt     *entity.Receipt
	err         error
}

func (f *fakeSales) CreateSale(_ context.Context, req *gateway.SaleRequest) (*entity.Receipt, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

type fakeCashSessions struct {
	open bool
}

func (f *fakeCashSessions) Current(_ context.Context, _ string) (*entity.CashSession, error) {
	if !f.open {
		return &entity.CashSession{Open: false}, nil
	}
	return &entity.CashSession{ID: uuid.New(), Open: true, OpenedAt: time.Now()}, nil
}

type checkoutFixture struct {
	store      *memory.SessionStore
	cart       *CartService
	settlement *SettlementService
	checkout   *CheckoutService
	sales      *fakeSales
	register   *fakeCashSessions
	bread      entity.ProductSnapshot
	milk       entity.ProductSnapshot
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	bread := entity.ProductSnapshot{
		ID:         uuid.New(),
		Name:       "Pan",
		SKU:        "PAN-01",
		NetPrice:   2000,
		GrossPrice: 2380,
		TaxRate:    0.19,
	}
	milk := entity.ProductSnapshot{
		ID:         uuid.New(),
		Name:       "Leche",
		SKU:        "LEC-01",
		NetPrice:   320,
		GrossPrice: 380,
		TaxRate:    0.19,
		Stock:      3,
		TrackStock: true,
	}
	store := memory.NewSessionStore()
	catalog := &fakeCatalog{products: map[uuid.UUID]entity.ProductSnapshot{
		bread.ID: bread,
		milk.ID:  milk,
	}}
	methods := &fakeMethods{methods: []entity.PaymentMethod{
		{ID: uuid.New(), Code: "efectivo", Name: "Efectivo"},
		{ID: uuid.New(), Code: "tarjeta", Name: "Tarjeta"},
	}}
	sales := &fakeSales{receipt: &entity.Receipt{Folio: "F-1001", IssuedAt: time.Now()}}
	register := &fakeCashSessions{open: true}
	placeholder := entity.Customer{Name: "Consumidor Final", TaxID: "66.666.666-6"}

	return &checkoutFixture{
		store:      store,
		cart:       NewCartService(store, catalog),
		settlement: NewSettlementService(store, methods, "efectivo"),
		checkout:   NewCheckoutService(store, sales, register, placeholder),
		sales:      sales,
		register:   register,
		bread:      bread,
		milk:       milk,
	}
}

// fullyTendered adds one bread to the cart and a cash line covering the total.
func (f *checkoutFixture) fullyTendered(t *testing.T, terminalID string) {
	t.Helper()

	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, terminalID, f.bread.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	view, err := f.settlement.AddTenderLine(ctx, terminalID)
	require.NoError(t, err)
	require.True(t, view.CanSubmit)
}

func TestSubmitSuccess(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	// Pay with a 5000 bill, expect 2620 change.
	_, err := f.settlement.ApplyQuickCash("T-1", 5000)
	require.NoError(t, err)

	receipt, err := f.checkout.Submit(context.Background(), "T-1")
	require.NoError(t, err)
	assert.Equal(t, "F-1001", receipt.Folio)
	assert.Equal(t, enum.DocumentTypeBoleta, receipt.DocumentType)
	assert.Equal(t, int64(2380), receipt.TotalGross)
	assert.Equal(t, int64(5000), receipt.TotalPaid)
	assert.Equal(t, int64(2620), receipt.Change)

	// Session returns to a blank sale with the receipt kept for display.
	view, err := f.checkout.Status("T-1")
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStateSucceeded, view.State)
	assert.Empty(t, view.Tenders)
	assert.Equal(t, int64(0), view.Totals.Gross)
	require.NotNil(t, view.LastReceipt)
	assert.Equal(t, "F-1001", view.LastReceipt.Folio)
}

func TestSubmitSubstitutesPlaceholderCustomer(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	_, err := f.checkout.Submit(context.Background(), "T-1")
	require.NoError(t, err)

	require.NotNil(t, f.sales.lastRequest)
	assert.Equal(t, "Consumidor Final", f.sales.lastRequest.Customer.Name)
	assert.Equal(t, "66.666.666-6", f.sales.lastRequest.Customer.TaxID)
	assert.Equal(t, 39, f.sales.lastRequest.DocumentTypeCode)
	assert.Len(t, f.sales.lastRequest.Items, 1)
	assert.Len(t, f.sales.lastRequest.Tenders, 1)
}

func TestSubmitFailurePreservesSettlement(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")
	f.sales.err = apperror.NewAppError(422, "Stock changed since cart was built")

	_, err := f.checkout.Submit(context.Background(), "T-1")
	require.Error(t, err)

	view, err := f.checkout.Status("T-1")
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStateFailed, view.State)
	assert.Equal(t, "Stock changed since cart was built", view.LastError)
	// Cart and tenders survive so the cashier can correct and retry.
	assert.Equal(t, int64(2380), view.Totals.Gross)
	require.Len(t, view.Tenders, 1)
	assert.Equal(t, int64(2380), view.Tenders[0].Amount)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)

	_, err := f.checkout.Submit(context.Background(), "T-1")
	assert.ErrorIs(t, err, apperror.ErrCartEmpty)
}

func TestSubmitRejectsUnsettledSale(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, "T-1", f.bread.ID, decimal.NewFromInt(1))
	require.NoError(t, err)

	// No tender lines at all.
	_, err = f.checkout.Submit(ctx, "T-1")
	assert.ErrorIs(t, err, apperror.ErrSaleUnsettled)

	// A line that underpays is just as unsettled.
	_, err = f.settlement.AddTenderLine(ctx, "T-1")
	require.NoError(t, err)
	_, err = f.settlement.SetAmount("T-1", 0, 1000)
	require.NoError(t, err)
	_, err = f.checkout.Submit(ctx, "T-1")
	assert.ErrorIs(t, err, apperror.ErrSaleUnsettled)
	assert.Nil(t, f.sales.lastRequest)
}

func TestSubmitRequiresCustomerForFactura(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	_, err := f.checkout.SetDocumentType("T-1", int(enum.DocumentTypeFactura))
	require.NoError(t, err)

	_, err = f.checkout.Submit(context.Background(), "T-1")
	assert.ErrorIs(t, err, apperror.ErrCustomerRequired)

	_, err = f.checkout.SetCustomer("T-1", &entity.Customer{
		ID:    uuid.New(),
		Name:  "Comercial Andina SpA",
		TaxID: "76.123.456-0",
	})
	require.NoError(t, err)

	_, err = f.checkout.Submit(context.Background(), "T-1")
	require.NoError(t, err)
	assert.Equal(t, "Comercial Andina SpA", f.sales.lastRequest.Customer.Name)
	assert.Equal(t, 33, f.sales.lastRequest.DocumentTypeCode)
}

func TestSubmitRejectsClosedRegister(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")
	f.register.open = false

	_, err := f.checkout.Submit(context.Background(), "T-1")
	assert.ErrorIs(t, err, apperror.ErrRegisterClosed)
	assert.Nil(t, f.sales.lastRequest)
}

func TestResetClearsSaleButKeepsReceipt(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	_, err := f.checkout.Submit(context.Background(), "T-1")
	require.NoError(t, err)

	f.fullyTendered(t, "T-1")
	view, err := f.checkout.Reset("T-1")
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStateIdle, view.State)
	assert.Equal(t, int64(0), view.Totals.Gross)
	assert.Empty(t, view.Tenders)
	require.NotNil(t, view.LastReceipt)
	assert.Equal(t, "F-1001", view.LastReceipt.Folio)
}

func TestSubmittingLocksOutAllOperations(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	// Freeze the session in the in-flight state, as if the sale request
	// had left but its outcome had not landed yet.
	require.NoError(t, f.store.With("T-1", func(sess *entity.CheckoutSession) error {
		sess.State = enum.CheckoutStateSubmitting
		return nil
	}))

	ctx := context.Background()

	_, err := f.checkout.Submit(ctx, "T-1")
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)

	_, err = f.cart.AddItem(ctx, "T-1", f.bread.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.cart.UpdateQuantity("T-1", f.bread.ID, decimal.NewFromInt(2))
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.cart.Clear("T-1")
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)

	_, err = f.settlement.AddTenderLine(ctx, "T-1")
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.settlement.SetAmount("T-1", 0, 5000)
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.settlement.ApplyQuickCash("T-1", 5000)
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)

	_, err = f.checkout.SetCustomer("T-1", nil)
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.checkout.SetDocumentType("T-1", int(enum.DocumentTypeFactura))
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	_, err = f.checkout.Reset("T-1")
	assert.ErrorIs(t, err, apperror.ErrSubmissionInFlight)
	assert.ErrorIs(t, f.checkout.EndSession("T-1"), apperror.ErrSubmissionInFlight)

	// Only the original request's sale ever left.
	assert.Nil(t, f.sales.lastRequest)
}

func TestAddItemStockGate(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	ctx := context.Background()

	view, err := f.cart.AddItem(ctx, "T-1", f.milk.ID, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)

	// The gate counts what is already in the cart: 2 + 2 exceeds stock 3.
	_, err = f.cart.AddItem(ctx, "T-1", f.milk.ID, decimal.NewFromInt(2))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// The cart is untouched by the rejected add.
	view, err = f.cart.GetCart("T-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.True(t, view.Lines[0].Quantity.Equal(decimal.NewFromInt(2)))

	// Taking exactly the remaining stock is allowed.
	view, err = f.cart.AddItem(ctx, "T-1", f.milk.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, view.Lines[0].Quantity.Equal(decimal.NewFromInt(3)))
}

func TestEndSessionDropsEverything(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	_, err := f.checkout.Submit(context.Background(), "T-1")
	require.NoError(t, err)

	f.fullyTendered(t, "T-1")
	require.NoError(t, f.checkout.EndSession("T-1"))

	// The next request starts a fresh session: no cart, no tenders, and
	// unlike Reset no pinned receipt either.
	view, err := f.checkout.Status("T-1")
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutStateIdle, view.State)
	assert.Equal(t, int64(0), view.Totals.Gross)
	assert.Empty(t, view.Tenders)
	assert.Nil(t, view.LastReceipt)
}

func TestSessionsAreIsolatedByTerminal(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.fullyTendered(t, "T-1")

	view, err := f.checkout.Status("T-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Totals.Gross)
	assert.Empty(t, view.Tenders)
}
