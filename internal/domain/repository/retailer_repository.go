package repository

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RetailerRepository define el puerto de persistencia para Retailer (DIP).
type RetailerRepository interface {
	Create(ctx context.Context, retailer *entity.Retailer) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Retailer, error)
	List(ctx context.Context, limit int) ([]*entity.Retailer, error)
	// Update persiste los campos editables; nunca TotalDue.
	Update(ctx context.Context, retailer *entity.Retailer) error
	// Delete devuelve false si no existía.
	Delete(ctx context.Context, id string) (bool, error)
	// AdjustTotalDue suma delta al saldo. Un retailer inexistente se ignora.
	AdjustTotalDue(ctx context.Context, id string, delta decimal.Decimal) error
	// Summary devuelve la cantidad de retailers y la suma de sus saldos.
	Summary(ctx context.Context) (count int, totalDue decimal.Decimal, err error)
}
