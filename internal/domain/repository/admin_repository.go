package repository

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	// Create falla con domain.ErrDuplicate si el email ya existe.
	Create(ctx context.Context, admin *entity.Admin) error
	// GetByEmail devuelve nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
