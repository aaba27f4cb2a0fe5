package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// StockQuantity puede quedar negativo: la facturación no valida existencias.
type Product struct {
	ID            string
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
	Unit          string // pcs, box, pack, ream...
	CreatedAt     time.Time
}
