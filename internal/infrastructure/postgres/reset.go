package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetData vacía las tablas de negocio. Los administradores se conservan.
func ResetData(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE payments, invoice_items, invoices, products, retailers`)
	if err != nil {
		return fmt.Errorf("reset data: %w", err)
	}
	return nil
}
