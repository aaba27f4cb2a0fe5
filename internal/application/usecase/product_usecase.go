package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/ledger"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El ledger descuenta stock al facturar.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := required(
		field{"product_name", in.ProductName},
		field{"category", in.Category},
		field{"unit", in.Unit},
	); err != nil {
		return nil, err
	}
	if in.Price == nil {
		return nil, fmt.Errorf("price es requerido: %w", domain.ErrInvalidInput)
	}
	if err := validPrice(*in.Price); err != nil {
		return nil, err
	}
	if in.StockQuantity == nil {
		return nil, fmt.Errorf("stock_quantity es requerido: %w", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.ProductName),
		Category:      strings.TrimSpace(in.Category),
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
		Unit:          strings.TrimSpace(in.Unit),
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return ToProductResponse(product), nil
}

// List lista productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return ToProductList(list), nil
}

// Update aplica solo los campos presentes en el body. El repositorio escribe
// únicamente esas columnas: sin stock_quantity el stock no se toca.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var patch repository.ProductPatch
	for _, f := range []struct {
		name string
		in   dto.Optional[string]
		dst  **string
	}{
		{"product_name", in.ProductName, &patch.Name},
		{"category", in.Category, &patch.Category},
		{"unit", in.Unit, &patch.Unit},
	} {
		if !f.in.Set {
			continue
		}
		var v string
		if err := applyText(f.name, f.in, &v); err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	if in.Price.Set {
		price, ok := in.Price.Get()
		if !ok {
			return nil, fmt.Errorf("price: %w", domain.ErrNullField)
		}
		if err := validPrice(price); err != nil {
			return nil, err
		}
		patch.Price = &price
	}
	if in.StockQuantity.Set {
		qty, ok := in.StockQuantity.Get()
		if !ok {
			return nil, fmt.Errorf("stock_quantity: %w", domain.ErrNullField)
		}
		patch.StockQuantity = &qty
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	product, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto por ID. Las líneas de factura conservan su snapshot.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotFound
	}
	return nil
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		ProductName:   p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Unit:          p.Unit,
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductList convierte una lista de entidades.
func ToProductList(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToProductResponse(p))
	}
	return out
}

func validPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if !ledger.IsCents(price) {
		return fmt.Errorf("price admite hasta %d decimales: %w", ledger.MoneyScale, domain.ErrInvalidInput)
	}
	return nil
}
