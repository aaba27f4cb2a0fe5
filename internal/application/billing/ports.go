package billing

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LedgerRepositories repos atados a una misma transacción.
type LedgerRepositories struct {
	Retailers repository.RetailerRepository
	Products  repository.ProductRepository
	Invoices  repository.InvoiceRepository
	Payments  repository.PaymentRepository
}

// LedgerTxRunner ejecuta fn dentro de una transacción. Si fn retorna error
// ningún cambio hecho a través de repos queda persistido.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(repos LedgerRepositories) error) error
}

// Recorder recibe los eventos del ledger (métricas). Puede ser nil.
type Recorder interface {
	InvoiceCreated(total, paid decimal.Decimal)
	PaymentRecorded(amount decimal.Decimal)
	LedgerRejected(operation string, err error)
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
// retailer puede ser nil si fue eliminado después de facturar.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, retailer *entity.Retailer, payments []*entity.Payment) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) InvoiceCreated(decimal.Decimal, decimal.Decimal) {}
func (nopRecorder) PaymentRecorded(decimal.Decimal)                 {}
func (nopRecorder) LedgerRejected(string, error)                    {}
