package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const listLimit = 1000

// RetailerUseCase casos de uso CRUD para retailers. TotalDue solo lo modifica el ledger.
type RetailerUseCase struct {
	repo repository.RetailerRepository
}

// NewRetailerUseCase construye el caso de uso.
func NewRetailerUseCase(repo repository.RetailerRepository) *RetailerUseCase {
	return &RetailerUseCase{repo: repo}
}

// Create registra un retailer con saldo cero.
func (uc *RetailerUseCase) Create(ctx context.Context, in dto.CreateRetailerRequest) (*dto.RetailerResponse, error) {
	if err := required(
		field{"shop_name", in.ShopName},
		field{"owner_name", in.OwnerName},
		field{"phone_number", in.PhoneNumber},
		field{"address", in.Address},
	); err != nil {
		return nil, err
	}
	retailer := &entity.Retailer{
		ID:          uuid.New().String(),
		ShopName:    strings.TrimSpace(in.ShopName),
		OwnerName:   strings.TrimSpace(in.OwnerName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		TotalDue:    decimal.Zero,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := uc.repo.Create(ctx, retailer); err != nil {
		return nil, err
	}
	return ToRetailerResponse(retailer), nil
}

// GetByID obtiene un retailer por ID.
func (uc *RetailerUseCase) GetByID(ctx context.Context, id string) (*dto.RetailerResponse, error) {
	retailer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if retailer == nil {
		return nil, domain.ErrRetailerNotFound
	}
	return ToRetailerResponse(retailer), nil
}

// List lista retailers.
func (uc *RetailerUseCase) List(ctx context.Context) ([]dto.RetailerResponse, error) {
	list, err := uc.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RetailerResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *ToRetailerResponse(r))
	}
	return out, nil
}

// Update aplica solo los campos presentes en el body.
func (uc *RetailerUseCase) Update(ctx context.Context, id string, in dto.UpdateRetailerRequest) (*dto.RetailerResponse, error) {
	if !in.ShopName.Set && !in.OwnerName.Set && !in.PhoneNumber.Set && !in.Address.Set {
		return nil, domain.ErrEmptyUpdate
	}
	retailer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if retailer == nil {
		return nil, domain.ErrRetailerNotFound
	}
	for _, f := range []struct {
		name string
		in   dto.Optional[string]
		dst  *string
	}{
		{"shop_name", in.ShopName, &retailer.ShopName},
		{"owner_name", in.OwnerName, &retailer.OwnerName},
		{"phone_number", in.PhoneNumber, &retailer.PhoneNumber},
		{"address", in.Address, &retailer.Address},
	} {
		if err := applyText(f.name, f.in, f.dst); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, retailer); err != nil {
		return nil, err
	}
	return ToRetailerResponse(retailer), nil
}

// Delete elimina un retailer. Sus facturas se conservan.
func (uc *RetailerUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrRetailerNotFound
	}
	return nil
}

// ToRetailerResponse convierte la entidad a DTO.
func ToRetailerResponse(r *entity.Retailer) *dto.RetailerResponse {
	if r == nil {
		return nil
	}
	return &dto.RetailerResponse{
		ID:          r.ID,
		ShopName:    r.ShopName,
		OwnerName:   r.OwnerName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		TotalDue:    r.TotalDue,
		CreatedAt:   r.CreatedAt,
	}
}
