package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/ledger"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct{ access }

// NewInvoiceRepository construye el repo sobre el store.
func NewInvoiceRepository(s *Store) *InvoiceRepo { return &InvoiceRepo{access{s: s}} }

func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	return r.write(func(st *state) error {
		if _, ok := st.invoices[invoice.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, inv := range st.invoices {
			if inv.Number == invoice.Number {
				return domain.ErrDuplicate
			}
		}
		st.invoices[invoice.ID] = invoice.Clone()
		return nil
	})
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	var out *entity.Invoice
	r.read(func(st *state) {
		if v, ok := st.invoices[id]; ok {
			out = v.Clone()
		}
	})
	return out, nil
}

// GetByIDForUpdate no necesita bloqueo adicional: dentro de RunLedger el store ya está tomado.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *InvoiceRepo) List(_ context.Context, limit int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	r.read(func(st *state) {
		for _, v := range st.invoices {
			out = append(out, v.Clone())
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].InvoiceDate.Equal(out[j].InvoiceDate) {
			a, _ := ledger.ParseNumber(out[i].Number)
			b, _ := ledger.ParseNumber(out[j].Number)
			return a > b
		}
		return out[i].InvoiceDate.After(out[j].InvoiceDate)
	})
	return truncate(out, limit), nil
}

func (r *InvoiceRepo) UpdateBalance(_ context.Context, invoice *entity.Invoice) error {
	return r.write(func(st *state) error {
		cur, ok := st.invoices[invoice.ID]
		if !ok {
			return domain.ErrInvoiceNotFound
		}
		cur.PaidAmount = invoice.PaidAmount
		cur.DueAmount = invoice.DueAmount
		cur.Status = invoice.Status
		return nil
	})
}

func (r *InvoiceRepo) LastSequence(_ context.Context) (int64, error) {
	var numbers []string
	r.read(func(st *state) {
		for _, v := range st.invoices {
			numbers = append(numbers, v.Number)
		}
	})
	return ledger.MaxSequence(numbers), nil
}

func (r *InvoiceRepo) SumTotalSince(_ context.Context, since time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	r.read(func(st *state) {
		for _, v := range st.invoices {
			if !v.InvoiceDate.Before(since) {
				sum = sum.Add(v.TotalAmount)
			}
		}
	})
	return sum, nil
}
