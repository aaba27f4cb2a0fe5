package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/ledger"
)

// RecordPayment abona amount a la factura. La fila de la factura queda
// bloqueada durante la transacción, así dos pagos concurrentes no pueden
// superar juntos el saldo pendiente.
func (uc *LedgerUseCase) RecordPayment(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.recordPayment(ctx, in)
	if err != nil {
		uc.recorder.LedgerRejected("record_payment", err)
		return nil, err
	}
	uc.recorder.PaymentRecorded(payment.Amount)
	out := toPaymentResponse(payment)
	return &out, nil
}

func (uc *LedgerUseCase) recordPayment(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	if in.InvoiceID == "" {
		return nil, fmt.Errorf("invoice_id requerido: %w", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("amount debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	now := uc.timestamp()
	var created *entity.Payment
	err := uc.txRunner.RunLedger(ctx, func(repos LedgerRepositories) error {
		invoice, err := repos.Invoices.GetByIDForUpdate(ctx, in.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrInvoiceNotFound
		}

		next, err := ledger.BalanceOf(invoice).ApplyPayment(in.Amount)
		if err != nil {
			return err
		}

		payment := &entity.Payment{
			ID:            uuid.New().String(),
			InvoiceID:     invoice.ID,
			InvoiceNumber: invoice.Number,
			RetailerName:  invoice.RetailerName,
			Amount:        in.Amount,
			PaymentDate:   now,
			Notes:         in.Notes,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}

		next.Apply(invoice)
		if err := repos.Invoices.UpdateBalance(ctx, invoice); err != nil {
			return err
		}
		if err := repos.Retailers.AdjustTotalDue(ctx, invoice.RetailerID, in.Amount.Neg()); err != nil {
			return err
		}
		created = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
