package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body para POST /api/payments.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Notes     string          `json:"notes,omitempty"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	RetailerName  string          `json:"retailer_name"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         string          `json:"notes,omitempty"`
}
