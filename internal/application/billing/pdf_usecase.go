package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

// PDFUseCase arma los datos de una factura y delega el render al generador.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	retailerRepo repository.RetailerRepository
	paymentRepo  repository.PaymentRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	retailerRepo repository.RetailerRepository,
	paymentRepo repository.PaymentRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		retailerRepo: retailerRepo,
		paymentRepo:  paymentRepo,
		generator:    generator,
	}
}

// GenerateInvoicePDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrInvoiceNotFound
	}
	retailer, err := uc.retailerRepo.GetByID(ctx, invoice.RetailerID)
	if err != nil {
		return nil, "", err
	}
	payments, err := uc.paymentRepo.ListByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.generator.GenerateInvoicePDF(ctx, invoice, retailer, payments)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf %s: %w", invoice.Number, err)
	}
	return data, invoice.Number + ".pdf", nil
}
