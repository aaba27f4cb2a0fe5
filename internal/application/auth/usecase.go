package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/jhoicas/stationery-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TokenType valor de token_type en la respuesta de login.
const TokenType = "bearer"

// minPasswordLen largo mínimo al crear o cambiar una contraseña.
const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación de administradores.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password con bcrypt y emite un token firmado.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   TokenType,
		Admin:       toAdminResponse(admin),
	}, nil
}

// VerifyToken valida el token y devuelve el email del sujeto.
func (uc *AuthUseCase) VerifyToken(token string) (string, error) {
	email, err := jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}
	return email, nil
}

// Verify valida el token y devuelve el perfil del administrador.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*dto.AdminResponse, error) {
	email, err := uc.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return uc.Profile(ctx, email)
}

// Profile devuelve el administrador por email.
func (uc *AuthUseCase) Profile(ctx context.Context, email string) (*dto.AdminResponse, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	out := toAdminResponse(admin)
	return &out, nil
}

// CreateAdmin registra un administrador (CLI). Con reset=true un email
// existente solo recibe la nueva contraseña.
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, email, password, name string, reset bool) (*dto.AdminResponse, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email inválido: %w", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password debe tener al menos %d caracteres: %w", minPasswordLen, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = email
	}
	admin := &entity.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	err = uc.adminRepo.Create(ctx, admin)
	if errors.Is(err, domain.ErrDuplicate) && reset {
		if err := uc.adminRepo.UpdatePassword(ctx, email, admin.PasswordHash); err != nil {
			return nil, err
		}
		return uc.Profile(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	out := toAdminResponse(admin)
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toAdminResponse(a *entity.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}
