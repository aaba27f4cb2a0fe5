package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	RetailerID string               `json:"retailer_id"`
	Products   []InvoiceLineRequest `json:"products"`
	PaidAmount decimal.Decimal      `json:"paid_amount" swaggertype:"number"`
	Notes      string               `json:"notes,omitempty"`
}

// InvoiceLineRequest línea de factura. Total es opcional y se valida contra quantity x price.
type InvoiceLineRequest struct {
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity"`
	Price       decimal.Decimal  `json:"price" swaggertype:"number"`
	Total       *decimal.Decimal `json:"total,omitempty" swaggertype:"number"`
}

// InvoiceLineResponse línea en respuestas.
type InvoiceLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Total       decimal.Decimal `json:"total" swaggertype:"number"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	RetailerID    string                `json:"retailer_id"`
	RetailerName  string                `json:"retailer_name"`
	Products      []InvoiceLineResponse `json:"products"`
	TotalAmount   decimal.Decimal       `json:"total_amount" swaggertype:"number"`
	PaidAmount    decimal.Decimal       `json:"paid_amount" swaggertype:"number"`
	DueAmount     decimal.Decimal       `json:"due_amount" swaggertype:"number"`
	Status        string                `json:"status" enums:"paid,partial,unpaid"`
	InvoiceDate   time.Time             `json:"invoice_date"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
