package billing_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	ctx       context.Context
	retailers *memory.RetailerRepo
	products  *memory.ProductRepo
	invoices  *memory.InvoiceRepo
	payments  *memory.PaymentRepo
	recorder  *fakeRecorder
	uc        *billing.LedgerUseCase
}

var fixedNow = time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		ctx:       context.Background(),
		retailers: memory.NewRetailerRepository(store),
		products:  memory.NewProductRepository(store),
		invoices:  memory.NewInvoiceRepository(store),
		payments:  memory.NewPaymentRepository(store),
		recorder:  &fakeRecorder{},
	}
	f.uc = billing.NewLedgerUseCase(memory.NewTxRunner(store), f.invoices, f.payments, f.recorder).
		WithClock(func() time.Time { return fixedNow })

	require.NoError(t, f.retailers.Create(f.ctx, &entity.Retailer{ID: "r1", ShopName: "Sharma Stationers", TotalDue: decimal.Zero}))
	require.NoError(t, f.products.Create(f.ctx, &entity.Product{ID: "pen", Name: "Gel Pen", Price: decimal.NewFromInt(10), StockQuantity: 100}))
	require.NoError(t, f.products.Create(f.ctx, &entity.Product{ID: "book", Name: "Notebook", Price: decimal.NewFromInt(50), StockQuantity: 20}))
	return f
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.products.GetByID(f.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockQuantity
}

func (f *fixture) due(t *testing.T) decimal.Decimal {
	t.Helper()
	r, err := f.retailers.GetByID(f.ctx, "r1")
	require.NoError(t, err)
	return r.TotalDue
}

func (f *fixture) paymentsOf(t *testing.T, invoiceID string) []*entity.Payment {
	t.Helper()
	list, err := f.payments.ListByInvoice(f.ctx, invoiceID)
	require.NoError(t, err)
	return list
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(productID string, qty int, price string) dto.InvoiceLineRequest {
	return dto.InvoiceLineRequest{ProductID: productID, Quantity: qty, Price: d(price)}
}

type fakeRecorder struct {
	mu       sync.Mutex
	invoices int
	payments []decimal.Decimal
	rejected []string
}

func (r *fakeRecorder) InvoiceCreated(_, paid decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices++
}

func (r *fakeRecorder) PaymentRecorded(amount decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, amount)
}

func (r *fakeRecorder) LedgerRejected(op string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = append(r.rejected, op)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_PagoParcial(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 10, "10"), line("book", 2, "50")},
		PaidAmount: d("150"),
		Notes:      "pedido semanal",
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", out.InvoiceNumber)
	assert.Equal(t, "Sharma Stationers", out.RetailerName)
	assert.True(t, out.TotalAmount.Equal(d("200")))
	assert.True(t, out.PaidAmount.Equal(d("150")))
	assert.True(t, out.DueAmount.Equal(d("50")))
	assert.Equal(t, "partial", out.Status)
	assert.Equal(t, fixedNow, out.InvoiceDate)
	assert.Equal(t, "Gel Pen", out.Products[0].ProductName)

	assert.Equal(t, 90, f.stock(t, "pen"))
	assert.Equal(t, 18, f.stock(t, "book"))
	assert.True(t, f.due(t).Equal(d("50")), "el saldo del retailer suma el pendiente")

	pays := f.paymentsOf(t, out.ID)
	require.Len(t, pays, 1)
	assert.True(t, pays[0].Amount.Equal(d("150")))
	assert.Equal(t, billing.InitialPaymentNote, pays[0].Notes)
	assert.Equal(t, "INV-1001", pays[0].InvoiceNumber)

	assert.Equal(t, 1, f.recorder.invoices)
}

func TestCreateInvoice_SinPago(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 3, "10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "unpaid", out.Status)
	assert.Empty(t, f.paymentsOf(t, out.ID), "sin pago inicial no se registra pago")
}

func TestCreateInvoice_PagoTotal(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 3, "10")},
		PaidAmount: d("30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", out.Status)
	assert.True(t, out.DueAmount.IsZero())
	assert.True(t, f.due(t).IsZero())
}

func TestCreateInvoice_SobrepagoQuedaPagada(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 1, "10")},
		PaidAmount: d("15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", out.Status)
	assert.True(t, out.DueAmount.Equal(d("-5")))
	assert.True(t, f.due(t).Equal(d("-5")))
}

func TestCreateInvoice_DecimalesExactos(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 3, "0.1"), line("book", 1, "0.2")},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.5", out.TotalAmount.String())
}

func TestCreateInvoice_StockPuedeQuedarNegativo(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("book", 25, "50")},
	})
	require.NoError(t, err)
	assert.Equal(t, -5, f.stock(t, "book"))
}

func TestCreateInvoice_NumeracionConsecutiva(t *testing.T) {
	f := newFixture(t)
	for _, want := range []string{"INV-1001", "INV-1002", "INV-1003"} {
		out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
			RetailerID: "r1",
			Products:   []dto.InvoiceLineRequest{line("pen", 1, "10")},
		})
		require.NoError(t, err)
		assert.Equal(t, want, out.InvoiceNumber)
	}
}

func TestCreateInvoice_ContinuaDesdeNumeroMenor(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.invoices.Create(f.ctx, &entity.Invoice{ID: "legacy", Number: "INV-999", RetailerID: "r1", InvoiceDate: fixedNow.Add(-time.Hour)}))

	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 1, "10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-1000", out.InvoiceNumber)
}

func TestCreateInvoice_ProductoDesconocidoNoDejaRastro(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 5, "10"), line("ghost", 1, "10")},
		PaidAmount: d("10"),
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, 100, f.stock(t, "pen"))
	assert.True(t, f.due(t).IsZero())
	list, err := f.invoices.List(f.ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	all, err := f.payments.List(f.ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, []string{"create_invoice"}, f.recorder.rejected)

	// La numeración no avanza con una factura fallida.
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", 1, "10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", out.InvoiceNumber)
}

func TestCreateInvoice_RetailerDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "nope",
		Products:   []dto.InvoiceLineRequest{line("pen", 1, "10")},
	})
	assert.ErrorIs(t, err, domain.ErrRetailerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 100, f.stock(t, "pen"))
}

func TestCreateInvoice_Validaciones(t *testing.T) {
	f := newFixture(t)
	wrong := d("25")
	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
		want error
	}{
		{"sin retailer", dto.CreateInvoiceRequest{Products: []dto.InvoiceLineRequest{line("pen", 1, "10")}}, domain.ErrInvalidInput},
		{"sin líneas", dto.CreateInvoiceRequest{RetailerID: "r1"}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CreateInvoiceRequest{RetailerID: "r1", Products: []dto.InvoiceLineRequest{line("pen", 0, "10")}}, domain.ErrInvalidInput},
		{"pago negativo", dto.CreateInvoiceRequest{RetailerID: "r1", Products: []dto.InvoiceLineRequest{line("pen", 1, "10")}, PaidAmount: d("-1")}, domain.ErrInvalidInput},
		{"total de línea", dto.CreateInvoiceRequest{RetailerID: "r1", Products: []dto.InvoiceLineRequest{
			{ProductID: "pen", Quantity: 2, Price: d("10"), Total: &wrong},
		}}, domain.ErrLineTotalMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateInvoice(f.ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 100, f.stock(t, "pen"))
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordPayment
// ──────────────────────────────────────────────────────────────────────────────

func createUnpaid(t *testing.T, f *fixture, qty int) *dto.InvoiceResponse {
	t.Helper()
	out, err := f.uc.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		RetailerID: "r1",
		Products:   []dto.InvoiceLineRequest{line("pen", qty, "10")},
	})
	require.NoError(t, err)
	return out
}

func TestRecordPayment_ParcialYTotal(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 10) // 100

	p, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("40"), Notes: "abono"})
	require.NoError(t, err)
	assert.Equal(t, inv.InvoiceNumber, p.InvoiceNumber)
	assert.Equal(t, "Sharma Stationers", p.RetailerName)
	assert.Equal(t, fixedNow, p.PaymentDate)

	got, err := f.uc.GetInvoice(f.ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "partial", got.Status)
	assert.True(t, got.DueAmount.Equal(d("60")))
	assert.True(t, f.due(t).Equal(d("60")))

	_, err = f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("60")})
	require.NoError(t, err)
	got, err = f.uc.GetInvoice(f.ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)
	assert.True(t, got.PaidAmount.Equal(d("100")))
	assert.True(t, f.due(t).IsZero())

	assert.Len(t, f.recorder.payments, 2)
}

func TestRecordPayment_ExcedeSaldoNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 10)

	_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("100.01")})
	require.ErrorIs(t, err, domain.ErrAmountExceedsDue)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.GetInvoice(f.ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "unpaid", got.Status)
	assert.True(t, got.DueAmount.Equal(d("100")))
	assert.True(t, f.due(t).Equal(d("100")))
	assert.Empty(t, f.paymentsOf(t, inv.ID))
	assert.Equal(t, []string{"record_payment"}, f.recorder.rejected)
}

func TestRecordPayment_FacturaPagadaRechaza(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 1)
	_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("10")})
	require.NoError(t, err)

	_, err = f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("0.01")})
	assert.ErrorIs(t, err, domain.ErrAmountExceedsDue)
}

func TestRecordPayment_MontoNoPositivo(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 1)
	for _, amount := range []string{"0", "-5"} {
		_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d(amount)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, amount)
	}
}

func TestRecordPayment_FacturaDesconocida(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: "nope", Amount: d("1")})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestRecordPayment_ConcurrentesNoSuperanSaldo(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 10) // 100

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("30")})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrAmountExceedsDue), err.Error())
	}
	assert.Equal(t, 3, ok, "solo caben tres pagos de 30 en 100")

	got, err := f.uc.GetInvoice(f.ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, got.DueAmount.Equal(d("10")))
	assert.True(t, f.due(t).Equal(d("10")))
	assert.Len(t, f.paymentsOf(t, inv.ID), 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestQueries(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 2)
	_, err := f.uc.RecordPayment(f.ctx, dto.CreatePaymentRequest{InvoiceID: inv.ID, Amount: d("5")})
	require.NoError(t, err)

	invoices, err := f.uc.ListInvoices(f.ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)

	payments, err := f.uc.ListPayments(f.ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = f.uc.GetInvoice(f.ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	_, err = f.uc.ListInvoicePayments(f.ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct {
	retailer *entity.Retailer
	payments int
}

func (g *fakePDF) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, r *entity.Retailer, p []*entity.Payment) ([]byte, error) {
	g.retailer = r
	g.payments = len(p)
	return []byte("%PDF-fake"), nil
}

func TestPDFUseCase(t *testing.T) {
	f := newFixture(t)
	inv := createUnpaid(t, f, 2)
	gen := &fakePDF{}
	uc := billing.NewPDFUseCase(f.invoices, f.retailers, f.payments, gen)

	data, name, err := uc.GenerateInvoicePDF(f.ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), data)
	require.NotNil(t, gen.retailer)
	assert.Equal(t, "r1", gen.retailer.ID)

	_, _, err = uc.GenerateInvoicePDF(f.ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
