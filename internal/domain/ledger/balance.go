// Package ledger contiene la aritmética de facturas y pagos: totales de
// línea, saldo pendiente, estado de cobro y numeración. No tiene I/O.
package ledger

import (
	"fmt"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Balance estado monetario de una factura.
type Balance struct {
	Total  decimal.Decimal
	Paid   decimal.Decimal
	Due    decimal.Decimal
	Status entity.InvoiceStatus
}

// Status deriva el estado de cobro:
// paid si no queda saldo (incluye sobrepago), partial si hubo abonos, unpaid en otro caso.
func Status(paid, due decimal.Decimal) entity.InvoiceStatus {
	switch {
	case due.LessThanOrEqual(decimal.Zero):
		return entity.InvoiceStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return entity.InvoiceStatusPartial
	default:
		return entity.InvoiceStatusUnpaid
	}
}

// NewBalance calcula el saldo inicial de una factura. Un pago inicial
// mayor al total se acepta: Due queda negativo y el estado es paid.
func NewBalance(total, paid decimal.Decimal) (Balance, error) {
	if paid.IsNegative() {
		return Balance{}, fmt.Errorf("paid_amount no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if !IsCents(paid) {
		return Balance{}, fmt.Errorf("paid_amount admite hasta %d decimales: %w", MoneyScale, domain.ErrInvalidInput)
	}
	due := total.Sub(paid)
	return Balance{Total: total, Paid: paid, Due: due, Status: Status(paid, due)}, nil
}

// BalanceOf reconstruye el balance persistido de una factura.
func BalanceOf(inv *entity.Invoice) Balance {
	return Balance{Total: inv.TotalAmount, Paid: inv.PaidAmount, Due: inv.DueAmount, Status: inv.Status}
}

// ApplyPayment devuelve el balance tras abonar amount. El monto debe ser
// positivo y no superar el saldo pendiente; en ese caso el balance no cambia.
func (b Balance) ApplyPayment(amount decimal.Decimal) (Balance, error) {
	if !amount.IsPositive() {
		return b, fmt.Errorf("amount debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if !IsCents(amount) {
		return b, fmt.Errorf("amount admite hasta %d decimales: %w", MoneyScale, domain.ErrInvalidInput)
	}
	if amount.GreaterThan(b.Due) {
		return b, domain.ErrAmountExceedsDue
	}
	paid := b.Paid.Add(amount)
	due := b.Due.Sub(amount)
	return Balance{Total: b.Total, Paid: paid, Due: due, Status: Status(paid, due)}, nil
}

// Apply copia el balance sobre la factura.
func (b Balance) Apply(inv *entity.Invoice) {
	inv.TotalAmount = b.Total
	inv.PaidAmount = b.Paid
	inv.DueAmount = b.Due
	inv.Status = b.Status
}
