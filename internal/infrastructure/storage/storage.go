// Package storage abre el backend de persistencia configurado y expone los
// repositorios y el TxRunner del ledger.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/jhoicas/stationery-api/internal/infrastructure/memory"
	"github.com/jhoicas/stationery-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stationery-api/pkg/config"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// Storage repositorios listos para inyectar en los casos de uso.
type Storage struct {
	Admins    repository.AdminRepository
	Retailers repository.RetailerRepository
	Products  repository.ProductRepository
	Invoices  repository.InvoiceRepository
	Payments  repository.PaymentRepository
	TxRunner  billing.LedgerTxRunner

	// Pool solo con driver postgres; nil en memoria.
	Pool *pgxpool.Pool
}

// Open abre el driver de cfg.Storage. Con postgres y AutoMigrate aplica las migraciones.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn().Msg("storage en memoria: los datos se pierden al reiniciar")
		return NewMemory(), nil
	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.MigrateUp(ctx, pool, cfg.DB.Schema); err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Str("schema", cfg.DB.Schema).Msg("migraciones aplicadas")
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("storage driver desconocido: %q", cfg.Storage.Driver)
	}
}

// NewMemory storage en memoria con un store nuevo.
func NewMemory() *Storage {
	s := memory.NewStore()
	return &Storage{
		Admins:    memory.NewAdminRepository(s),
		Retailers: memory.NewRetailerRepository(s),
		Products:  memory.NewProductRepository(s),
		Invoices:  memory.NewInvoiceRepository(s),
		Payments:  memory.NewPaymentRepository(s),
		TxRunner:  memory.NewTxRunner(s),
	}
}

// NewPostgres storage sobre un pool ya abierto.
func NewPostgres(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Admins:    postgres.NewAdminRepository(pool),
		Retailers: postgres.NewRetailerRepository(pool),
		Products:  postgres.NewProductRepository(pool),
		Invoices:  postgres.NewInvoiceRepository(pool),
		Payments:  postgres.NewPaymentRepository(pool),
		TxRunner:  postgres.NewTxRunner(pool),
		Pool:      pool,
	}
}

// Ping verifica el backend (health check).
func (s *Storage) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return nil
	}
	return s.Pool.Ping(ctx)
}

// Close libera el pool si lo hay.
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
