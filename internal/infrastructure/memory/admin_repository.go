package memory

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo administradores en memoria.
type AdminRepo struct{ access }

// NewAdminRepository construye el repo sobre el store.
func NewAdminRepository(s *Store) *AdminRepo { return &AdminRepo{access{s: s}} }

func (r *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	return r.write(func(st *state) error {
		if _, ok := st.admins[admin.Email]; ok {
			return domain.ErrDuplicate
		}
		st.admins[admin.Email] = *admin
		return nil
	})
}

func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	var out *entity.Admin
	r.read(func(st *state) {
		if a, ok := st.admins[email]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r *AdminRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return r.write(func(st *state) error {
		a, ok := st.admins[email]
		if !ok {
			return domain.ErrAdminNotFound
		}
		a.PasswordHash = passwordHash
		st.admins[email] = a
		return nil
	})
}
