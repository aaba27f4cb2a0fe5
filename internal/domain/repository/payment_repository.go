package repository

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// List ordena por payment_date descendente.
	List(ctx context.Context, limit int) ([]*entity.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
}
