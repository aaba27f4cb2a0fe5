package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stationery-api/internal/application/auth"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/infrastructure/memory"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "stationery-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.AdminRepo) {
	t.Helper()
	repo := memory.NewAdminRepository(memory.NewStore())
	uc := auth.NewAuthUseCase(repo, testJWT)
	_, err := uc.CreateAdmin(context.Background(), " Admin@Stationery.com ", "Admin@123", "Owner", false)
	require.NoError(t, err)
	return uc, repo
}

func TestLogin_YVerify(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@stationery.com", Password: "Admin@123"})
	require.NoError(t, err)
	assert.Equal(t, auth.TokenType, out.TokenType)
	assert.Equal(t, "admin@stationery.com", out.Admin.Email, "el email se normaliza")
	assert.Equal(t, "Owner", out.Admin.Name)

	profile, err := uc.Verify(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@stationery.com", profile.Email)
}

func TestLogin_Fallidos(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@stationery.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@stationery.com", Password: "Admin@123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_Invalido(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.VerifyToken("no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_AdminEliminado(t *testing.T) {
	repo := memory.NewAdminRepository(memory.NewStore())
	uc := auth.NewAuthUseCase(repo, testJWT)
	other := auth.NewAuthUseCase(memory.NewAdminRepository(memory.NewStore()), testJWT)
	_, err := other.CreateAdmin(context.Background(), "ghost@stationery.com", "Admin@123", "", false)
	require.NoError(t, err)
	out, err := other.Login(context.Background(), dto.LoginRequest{Email: "ghost@stationery.com", Password: "Admin@123"})
	require.NoError(t, err)

	_, err = uc.Verify(context.Background(), out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestCreateAdmin_Validaciones(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, err := uc.CreateAdmin(ctx, "sin-arroba", "Admin@123", "", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateAdmin(ctx, "x@stationery.com", "corta", "", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateAdmin(ctx, "admin@stationery.com", "Admin@123", "", false)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateAdmin_ResetCambiaPassword(t *testing.T) {
	uc, repo := newAuth(t)
	ctx := context.Background()

	out, err := uc.CreateAdmin(ctx, "admin@stationery.com", "NuevaClave1", "", true)
	require.NoError(t, err)
	assert.Equal(t, "Owner", out.Name, "reset solo cambia la contraseña")

	admin, err := repo.GetByEmail(ctx, "admin@stationery.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("NuevaClave1")))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@stationery.com", Password: "Admin@123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
