package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, product_name, category, price, stock_quantity, unit, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.StockQuantity, &p.Unit, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		product.ID, product.Name, product.Category, product.Price,
		product.StockQuantity, product.Unit, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos por fecha de alta.
func (r *ProductRepo) List(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id LIMIT $1`, limit)
}

// Update arma el SET solo con las columnas presentes en patch, así una
// edición del nombre no pisa el stock que descuenta una factura concurrente.
func (r *ProductRepo) Update(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}
	args := []any{id}
	sets := make([]string, 0, 5)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("product_name", *patch.Name)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Unit != nil {
		set("unit", *patch.Unit)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.StockQuantity != nil {
		set("stock_quantity", *patch.StockQuantity)
	}

	p, err := scanProduct(r.q.QueryRow(ctx,
		`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = $1 RETURNING `+productColumns,
		args...,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AdjustStock suma delta al stock en una sola sentencia (sin piso en cero).
func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET stock_quantity = stock_quantity + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust product stock: %w", err)
	}
	return nil
}

// ListLowStock productos con stock_quantity < threshold, los más escasos primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold, limit int) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE stock_quantity < $1 ORDER BY stock_quantity, id LIMIT $2`,
		threshold, limit,
	)
}
