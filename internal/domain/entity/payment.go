package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono registrado contra una factura.
type Payment struct {
	ID            string
	InvoiceID     string
	InvoiceNumber string
	RetailerName  string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	Notes         string
}
