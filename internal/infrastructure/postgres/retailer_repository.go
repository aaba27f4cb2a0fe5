package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.RetailerRepository = (*RetailerRepo)(nil)

const retailerColumns = `id, shop_name, owner_name, phone_number, address, total_due, created_at`

// RetailerRepo implementación del puerto RetailerRepository sobre PostgreSQL (usable con pool o tx).
type RetailerRepo struct {
	q Querier
}

// NewRetailerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRetailerRepository(q Querier) *RetailerRepo {
	return &RetailerRepo{q: q}
}

func scanRetailer(row pgx.Row) (*entity.Retailer, error) {
	var r entity.Retailer
	if err := row.Scan(&r.ID, &r.ShopName, &r.OwnerName, &r.PhoneNumber, &r.Address, &r.TotalDue, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create persiste un nuevo retailer.
func (r *RetailerRepo) Create(ctx context.Context, retailer *entity.Retailer) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO retailers (`+retailerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		retailer.ID, retailer.ShopName, retailer.OwnerName, retailer.PhoneNumber,
		retailer.Address, retailer.TotalDue, retailer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert retailer: %w", err)
	}
	return nil
}

// GetByID obtiene un retailer por ID.
func (r *RetailerRepo) GetByID(ctx context.Context, id string) (*entity.Retailer, error) {
	ret, err := scanRetailer(r.q.QueryRow(ctx, `SELECT `+retailerColumns+` FROM retailers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retailer: %w", err)
	}
	return ret, nil
}

// List lista retailers por fecha de alta.
func (r *RetailerRepo) List(ctx context.Context, limit int) ([]*entity.Retailer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+retailerColumns+` FROM retailers ORDER BY created_at, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list retailers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Retailer
	for rows.Next() {
		ret, err := scanRetailer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan retailer: %w", err)
		}
		list = append(list, ret)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto. total_due no se toca.
func (r *RetailerRepo) Update(ctx context.Context, retailer *entity.Retailer) error {
	_, err := r.q.Exec(ctx,
		`UPDATE retailers SET shop_name = $2, owner_name = $3, phone_number = $4, address = $5 WHERE id = $1`,
		retailer.ID, retailer.ShopName, retailer.OwnerName, retailer.PhoneNumber, retailer.Address,
	)
	if err != nil {
		return fmt.Errorf("update retailer: %w", err)
	}
	return nil
}

// Delete elimina un retailer por ID.
func (r *RetailerRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM retailers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete retailer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AdjustTotalDue incrementa (o decrementa) el saldo en una sola sentencia.
func (r *RetailerRepo) AdjustTotalDue(ctx context.Context, id string, delta decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE retailers SET total_due = total_due + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust retailer total_due: %w", err)
	}
	return nil
}

// Summary cantidad de retailers y saldo total pendiente.
func (r *RetailerRepo) Summary(ctx context.Context) (int, decimal.Decimal, error) {
	var count int
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(total_due), 0) FROM retailers`).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("retailer summary: %w", err)
	}
	return count, total, nil
}
