package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un administrador; email duplicado -> ErrDuplicate.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO admins (email, password_hash, name, created_at) VALUES ($1, $2, $3, $4)`,
		admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByEmail busca por email. Devuelve nil, nil si no existe.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx,
		`SELECT email, password_hash, name, created_at FROM admins WHERE email = $1`, email,
	).Scan(&a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// UpdatePassword reemplaza el hash del administrador.
func (r *AdminRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE admins SET password_hash = $2 WHERE email = $1`, email, passwordHash)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}
