package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price y StockQuantity son punteros para distinguir "no enviado" de cero.
type CreateProductRequest struct {
	ProductName   string           `json:"product_name"`
	Category      string           `json:"category"`
	Price         *decimal.Decimal `json:"price" swaggertype:"number"`
	StockQuantity *int             `json:"stock_quantity"`
	Unit          string           `json:"unit"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	ProductName   Optional[string]          `json:"product_name" swaggertype:"string"`
	Category      Optional[string]          `json:"category" swaggertype:"string"`
	Price         Optional[decimal.Decimal] `json:"price" swaggertype:"number"`
	StockQuantity Optional[int]             `json:"stock_quantity" swaggertype:"integer"`
	Unit          Optional[string]          `json:"unit" swaggertype:"string"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" swaggertype:"number"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	CreatedAt     time.Time       `json:"created_at"`
}
