package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ access }

// NewProductRepository construye el repo sobre el store.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{access{s: s}} }

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.write(func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.read(func(st *state) {
		if v, ok := st.products[id]; ok {
			out = &v
		}
	})
	return out, nil
}

func (r *ProductRepo) List(_ context.Context, limit int) ([]*entity.Product, error) {
	return r.filter(func(entity.Product) bool { return true }, limit), nil
}

// Update aplica el patch sobre el valor actual bajo el lock de escritura.
func (r *ProductRepo) Update(_ context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	var out *entity.Product
	err := r.write(func(st *state) error {
		cur, ok := st.products[id]
		if !ok {
			return nil
		}
		if patch.Name != nil {
			cur.Name = *patch.Name
		}
		if patch.Category != nil {
			cur.Category = *patch.Category
		}
		if patch.Unit != nil {
			cur.Unit = *patch.Unit
		}
		if patch.Price != nil {
			cur.Price = *patch.Price
		}
		if patch.StockQuantity != nil {
			cur.StockQuantity = *patch.StockQuantity
		}
		st.products[id] = cur
		out = &cur
		return nil
	})
	return out, err
}

func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.products[id]
		delete(st.products, id)
		return nil
	})
	return found, err
}

func (r *ProductRepo) AdjustStock(_ context.Context, id string, delta int) error {
	return r.write(func(st *state) error {
		cur, ok := st.products[id]
		if !ok {
			return nil
		}
		cur.StockQuantity += delta
		st.products[id] = cur
		return nil
	})
}

func (r *ProductRepo) ListLowStock(_ context.Context, threshold, limit int) ([]*entity.Product, error) {
	out := r.filter(func(p entity.Product) bool { return p.StockQuantity < threshold }, 0)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StockQuantity == out[j].StockQuantity {
			return out[i].ID < out[j].ID
		}
		return out[i].StockQuantity < out[j].StockQuantity
	})
	return truncate(out, limit), nil
}

func (r *ProductRepo) filter(keep func(entity.Product) bool, limit int) []*entity.Product {
	var out []*entity.Product
	r.read(func(st *state) {
		for _, v := range st.products {
			if keep(v) {
				v := v
				out = append(out, &v)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return truncate(out, limit)
}
