package ledger

import (
	"fmt"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineInput línea tal como la envía el cliente. Total es opcional; si
// viene debe coincidir con Quantity x Price.
type LineInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Total       *decimal.Decimal
}

// MoneyScale decimales que admite un monto (NUMERIC(14,2) en PostgreSQL).
const MoneyScale = 2

// IsCents indica si d no tiene más de MoneyScale decimales. Un monto con
// fracciones de centavo se rechaza antes de que la base lo redondee.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// LineTotal calcula quantity x price.
func LineTotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// BuildLines valida las líneas, recalcula cada total y devuelve la suma.
func BuildLines(in []LineInput) ([]entity.InvoiceLine, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, fmt.Errorf("la factura requiere al menos una línea: %w", domain.ErrInvalidInput)
	}
	lines := make([]entity.InvoiceLine, 0, len(in))
	sum := decimal.Zero
	for i, l := range in {
		if l.ProductID == "" {
			return nil, decimal.Zero, fmt.Errorf("línea %d: product_id requerido: %w", i+1, domain.ErrInvalidInput)
		}
		if l.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("línea %d: quantity debe ser mayor que cero: %w", i+1, domain.ErrInvalidInput)
		}
		if l.Price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("línea %d: price no puede ser negativo: %w", i+1, domain.ErrInvalidInput)
		}
		if !IsCents(l.Price) {
			return nil, decimal.Zero, fmt.Errorf("línea %d: price admite hasta %d decimales: %w", i+1, MoneyScale, domain.ErrInvalidInput)
		}
		total := LineTotal(l.Quantity, l.Price)
		if l.Total != nil && !l.Total.Equal(total) {
			return nil, decimal.Zero, fmt.Errorf("línea %d: se esperaba %s: %w", i+1, total.String(), domain.ErrLineTotalMismatch)
		}
		lines = append(lines, entity.InvoiceLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Total:       total,
		})
		sum = sum.Add(total)
	}
	return lines, sum, nil
}
