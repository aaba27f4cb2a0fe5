package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/ledger"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

const (
	// InitialPaymentNote nota del pago generado al facturar con paid_amount > 0.
	InitialPaymentNote = "Initial payment"
	// listLimit tope de registros en los listados.
	listLimit = 1000
)

// LedgerUseCase emite facturas, registra pagos y mantiene saldos y stock.
// Cada operación de escritura corre en una única transacción.
type LedgerUseCase struct {
	txRunner    LedgerTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	recorder    Recorder
	now         func() time.Time
}

// NewLedgerUseCase construye el caso de uso. recorder puede ser nil.
func NewLedgerUseCase(
	txRunner LedgerTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	recorder Recorder,
) *LedgerUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &LedgerUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj (tests y seed de datos históricos).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// timestamp hora actual con la precisión que conserva PostgreSQL.
func (uc *LedgerUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Microsecond)
}

// CreateInvoice valida las líneas, calcula totales, asigna el siguiente
// número INV-, descuenta stock, incrementa el saldo del retailer y registra
// el pago inicial si lo hay. Todo o nada.
func (uc *LedgerUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.createInvoice(ctx, in)
	if err != nil {
		uc.recorder.LedgerRejected("create_invoice", err)
		return nil, err
	}
	uc.recorder.InvoiceCreated(invoice.TotalAmount, invoice.PaidAmount)
	out := ToInvoiceResponse(invoice)
	return &out, nil
}

func (uc *LedgerUseCase) createInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.RetailerID == "" {
		return nil, fmt.Errorf("retailer_id requerido: %w", domain.ErrInvalidInput)
	}
	inputs := make([]ledger.LineInput, 0, len(in.Products))
	for _, p := range in.Products {
		inputs = append(inputs, ledger.LineInput{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Price:       p.Price,
			Total:       p.Total,
		})
	}
	lines, total, err := ledger.BuildLines(inputs)
	if err != nil {
		return nil, err
	}
	balance, err := ledger.NewBalance(total, in.PaidAmount)
	if err != nil {
		return nil, err
	}

	now := uc.timestamp()
	var created *entity.Invoice
	err = uc.txRunner.RunLedger(ctx, func(repos LedgerRepositories) error {
		retailer, err := repos.Retailers.GetByID(ctx, in.RetailerID)
		if err != nil {
			return err
		}
		if retailer == nil {
			return domain.ErrRetailerNotFound
		}

		for i := range lines {
			product, err := repos.Products.GetByID(ctx, lines[i].ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("línea %d (%s): %w", i+1, lines[i].ProductID, domain.ErrProductNotFound)
			}
			if lines[i].ProductName == "" {
				lines[i].ProductName = product.Name
			}
		}

		last, err := repos.Invoices.LastSequence(ctx)
		if err != nil {
			return err
		}
		invoice := &entity.Invoice{
			ID:           uuid.New().String(),
			Number:       ledger.FormatNumber(ledger.NextSequence(last)),
			RetailerID:   retailer.ID,
			RetailerName: retailer.ShopName,
			Lines:        lines,
			InvoiceDate:  now,
			Notes:        in.Notes,
			CreatedAt:    now,
		}
		balance.Apply(invoice)
		if err := repos.Invoices.Create(ctx, invoice); err != nil {
			return err
		}

		for _, l := range lines {
			if err := repos.Products.AdjustStock(ctx, l.ProductID, -l.Quantity); err != nil {
				return err
			}
		}
		if err := repos.Retailers.AdjustTotalDue(ctx, retailer.ID, balance.Due); err != nil {
			return err
		}

		if balance.Paid.IsPositive() {
			payment := &entity.Payment{
				ID:            uuid.New().String(),
				InvoiceID:     invoice.ID,
				InvoiceNumber: invoice.Number,
				RetailerName:  retailer.ShopName,
				Amount:        balance.Paid,
				PaymentDate:   now,
				Notes:         InitialPaymentNote,
			}
			if err := repos.Payments.Create(ctx, payment); err != nil {
				return err
			}
		}
		created = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
