package billing

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
)

// ListInvoices facturas por invoice_date descendente.
func (uc *LedgerUseCase) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return toInvoiceList(list), nil
}

// GetInvoice obtiene una factura por ID.
func (uc *LedgerUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	out := ToInvoiceResponse(inv)
	return &out, nil
}

// ListPayments pagos por payment_date descendente.
func (uc *LedgerUseCase) ListPayments(ctx context.Context) ([]dto.PaymentResponse, error) {
	list, err := uc.paymentRepo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list), nil
}

// ListInvoicePayments pagos de una factura existente.
func (uc *LedgerUseCase) ListInvoicePayments(ctx context.Context, invoiceID string) ([]dto.PaymentResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	list, err := uc.paymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list), nil
}
