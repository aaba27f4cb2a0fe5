package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos en memoria.
type PaymentRepo struct{ access }

// NewPaymentRepository construye el repo sobre el store.
func NewPaymentRepository(s *Store) *PaymentRepo { return &PaymentRepo{access{s: s}} }

func (r *PaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	return r.write(func(st *state) error {
		st.payments = append(st.payments, *payment)
		return nil
	})
}

func (r *PaymentRepo) List(_ context.Context, limit int) ([]*entity.Payment, error) {
	return r.filter(func(entity.Payment) bool { return true }, limit), nil
}

func (r *PaymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]*entity.Payment, error) {
	return r.filter(func(p entity.Payment) bool { return p.InvoiceID == invoiceID }, 0), nil
}

// filter devuelve por payment_date descendente; a igual fecha, el último insertado primero.
func (r *PaymentRepo) filter(keep func(entity.Payment) bool, limit int) []*entity.Payment {
	var out []*entity.Payment
	r.read(func(st *state) {
		for i := len(st.payments) - 1; i >= 0; i-- {
			if p := st.payments[i]; keep(p) {
				out = append(out, &p)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDate.After(out[j].PaymentDate)
	})
	return truncate(out, limit)
}
