package repository

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductPatch campos a modificar en un producto. nil deja la columna como está.
type ProductPatch struct {
	Name          *string
	Category      *string
	Unit          *string
	Price         *decimal.Decimal
	StockQuantity *int
}

// Empty indica que el patch no modifica nada.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Unit == nil && p.Price == nil && p.StockQuantity == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit int) ([]*entity.Product, error)
	// Update escribe solo las columnas presentes en patch y devuelve el producto
	// resultante, o nil, nil si no existe. El stock del patch pisa al actual;
	// sin StockQuantity el stock no se toca.
	Update(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	// AdjustStock suma delta (negativo al facturar) sin piso en cero.
	AdjustStock(ctx context.Context, id string, delta int) error
	// ListLowStock lista productos con stock_quantity < threshold.
	ListLowStock(ctx context.Context, threshold, limit int) ([]*entity.Product, error)
}
