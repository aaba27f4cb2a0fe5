package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de cobro de la factura.
type InvoiceStatus string

// Estados de cobro. El valor es el que viaja en JSON y se persiste.
const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
)

// Valid indica si el estado es uno de los conocidos.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPartial, InvoiceStatusUnpaid:
		return true
	}
	return false
}

// InvoiceLine línea de factura (snapshot del producto al facturar).
type InvoiceLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Invoice representa una factura emitida a un retailer.
// RetailerName está desnormalizado al momento de emitir.
type Invoice struct {
	ID           string
	Number       string // INV-<n>
	RetailerID   string
	RetailerName string
	Lines        []InvoiceLine
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	DueAmount    decimal.Decimal
	Status       InvoiceStatus
	InvoiceDate  time.Time
	Notes        string
	CreatedAt    time.Time
}

// Clone devuelve una copia profunda (las líneas no se comparten).
func (i *Invoice) Clone() *Invoice {
	if i == nil {
		return nil
	}
	c := *i
	c.Lines = append([]InvoiceLine(nil), i.Lines...)
	return &c
}
