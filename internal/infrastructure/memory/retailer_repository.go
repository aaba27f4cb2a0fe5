package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.RetailerRepository = (*RetailerRepo)(nil)

// RetailerRepo retailers en memoria.
type RetailerRepo struct{ access }

// NewRetailerRepository construye el repo sobre el store.
func NewRetailerRepository(s *Store) *RetailerRepo { return &RetailerRepo{access{s: s}} }

func (r *RetailerRepo) Create(_ context.Context, retailer *entity.Retailer) error {
	return r.write(func(st *state) error {
		if _, ok := st.retailers[retailer.ID]; ok {
			return domain.ErrDuplicate
		}
		st.retailers[retailer.ID] = *retailer
		return nil
	})
}

func (r *RetailerRepo) GetByID(_ context.Context, id string) (*entity.Retailer, error) {
	var out *entity.Retailer
	r.read(func(st *state) {
		if v, ok := st.retailers[id]; ok {
			out = &v
		}
	})
	return out, nil
}

// List ordena por created_at para un listado estable.
func (r *RetailerRepo) List(_ context.Context, limit int) ([]*entity.Retailer, error) {
	var out []*entity.Retailer
	r.read(func(st *state) {
		for _, v := range st.retailers {
			v := v
			out = append(out, &v)
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return truncate(out, limit), nil
}

func (r *RetailerRepo) Update(_ context.Context, retailer *entity.Retailer) error {
	return r.write(func(st *state) error {
		cur, ok := st.retailers[retailer.ID]
		if !ok {
			return nil
		}
		cur.ShopName = retailer.ShopName
		cur.OwnerName = retailer.OwnerName
		cur.PhoneNumber = retailer.PhoneNumber
		cur.Address = retailer.Address
		st.retailers[retailer.ID] = cur
		return nil
	})
}

func (r *RetailerRepo) Delete(_ context.Context, id string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.retailers[id]
		delete(st.retailers, id)
		return nil
	})
	return found, err
}

func (r *RetailerRepo) AdjustTotalDue(_ context.Context, id string, delta decimal.Decimal) error {
	return r.write(func(st *state) error {
		cur, ok := st.retailers[id]
		if !ok {
			return nil
		}
		cur.TotalDue = cur.TotalDue.Add(delta)
		st.retailers[id] = cur
		return nil
	})
}

func (r *RetailerRepo) Summary(_ context.Context) (int, decimal.Decimal, error) {
	total := decimal.Zero
	var count int
	r.read(func(st *state) {
		count = len(st.retailers)
		for _, v := range st.retailers {
			total = total.Add(v.TotalDue)
		}
	})
	return count, total, nil
}

func truncate[T any](list []T, limit int) []T {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
