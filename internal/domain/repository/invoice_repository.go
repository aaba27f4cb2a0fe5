package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice (cabecera + líneas).
type InvoiceRepository interface {
	// Create persiste la cabecera y sus líneas en orden.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	// List ordena por invoice_date descendente.
	List(ctx context.Context, limit int) ([]*entity.Invoice, error)
	// UpdateBalance persiste paid_amount, due_amount y status.
	UpdateBalance(ctx context.Context, invoice *entity.Invoice) error
	// LastSequence devuelve el mayor consecutivo numérico emitido (0 si no hay facturas).
	// Dentro de una transacción serializa la numeración hasta el commit.
	LastSequence(ctx context.Context) (int64, error)
	// SumTotalSince suma total_amount de facturas con invoice_date >= since.
	SumTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
