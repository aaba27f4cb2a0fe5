package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Retailer representa una tienda cliente que compra a crédito.
// TotalDue es el saldo corriente: la suma de DueAmount de sus facturas,
// mantenida de forma incremental por el ledger y nunca editable por el cliente.
type Retailer struct {
	ID          string
	ShopName    string
	OwnerName   string
	PhoneNumber string
	Address     string
	TotalDue    decimal.Decimal
	CreatedAt   time.Time
}
