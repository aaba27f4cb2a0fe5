package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/jhoicas/stationery-api/internal/infrastructure/memory"
)

func newRetailerUC() *usecase.RetailerUseCase {
	return usecase.NewRetailerUseCase(memory.NewRetailerRepository(memory.NewStore()))
}

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
}

func validRetailer() dto.CreateRetailerRequest {
	return dto.CreateRetailerRequest{ShopName: " Sharma Stationers ", OwnerName: "Raj", PhoneNumber: "555-0101", Address: "MG Road"}
}

func TestRetailer_CreateSaldoCero(t *testing.T) {
	uc := newRetailerUC()
	out, err := uc.Create(context.Background(), validRetailer())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Sharma Stationers", out.ShopName, "se recortan espacios")
	assert.True(t, out.TotalDue.IsZero())
	assert.False(t, out.CreatedAt.IsZero())
}

func TestRetailer_CreateCampoFaltante(t *testing.T) {
	uc := newRetailerUC()
	in := validRetailer()
	in.Address = "   "
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "address")
}

func TestRetailer_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	uc := newRetailerUC()
	created, err := uc.Create(ctx, validRetailer())
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateRetailerRequest{OwnerName: dto.Some("Priya")})
	require.NoError(t, err)
	assert.Equal(t, "Priya", out.OwnerName)
	assert.Equal(t, created.ShopName, out.ShopName, "los campos ausentes no cambian")

	_, err = uc.Update(ctx, created.ID, dto.UpdateRetailerRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)

	_, err = uc.Update(ctx, created.ID, dto.UpdateRetailerRequest{Address: dto.Optional[string]{Set: true, Null: true}})
	assert.ErrorIs(t, err, domain.ErrNullField)

	_, err = uc.Update(ctx, "nope", dto.UpdateRetailerRequest{OwnerName: dto.Some("x")})
	assert.ErrorIs(t, err, domain.ErrRetailerNotFound)
}

func TestRetailer_DeleteYList(t *testing.T) {
	ctx := context.Background()
	uc := newRetailerUC()
	a, err := uc.Create(ctx, validRetailer())
	require.NoError(t, err)
	_, err = uc.Create(ctx, validRetailer())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, a.ID))
	assert.ErrorIs(t, uc.Delete(ctx, a.ID), domain.ErrRetailerNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }

func TestProduct_CreateValidaciones(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()
	base := dto.CreateProductRequest{ProductName: "Gel Pen", Category: "Pens", Unit: "pcs", Price: ptr(decimal.NewFromInt(10)), StockQuantity: ptr(0)}

	out, err := uc.Create(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockQuantity, "stock cero es válido")

	noPrice := base
	noPrice.Price = nil
	_, err = uc.Create(ctx, noPrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := base
	negative.Price = ptr(decimal.NewFromInt(-1))
	_, err = uc.Create(ctx, negative)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	subCent := base
	subCent.Price = ptr(decimal.RequireFromString("1.005"))
	_, err = uc.Create(ctx, subCent)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noStock := base
	noStock.StockQuantity = nil
	_, err = uc.Create(ctx, noStock)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noName := base
	noName.ProductName = ""
	_, err = uc.Create(ctx, noName)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Update(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()
	created, err := uc.Create(ctx, dto.CreateProductRequest{ProductName: "Gel Pen", Category: "Pens", Unit: "pcs", Price: ptr(decimal.NewFromInt(10)), StockQuantity: ptr(40)})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Price:         dto.Some(decimal.RequireFromString("12.5")),
		StockQuantity: dto.Some(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "12.5", out.Price.String())
	assert.Equal(t, 0, out.StockQuantity)
	assert.Equal(t, "Gel Pen", out.ProductName)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: dto.Optional[decimal.Decimal]{Set: true, Null: true}})
	assert.ErrorIs(t, err, domain.ErrNullField)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: dto.Some(decimal.NewFromInt(-3))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: dto.Some(decimal.RequireFromString("12.499"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.Price.String(), "las actualizaciones rechazadas no persisten")
}

func TestProduct_Delete(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()
	created, err := uc.Create(ctx, dto.CreateProductRequest{ProductName: "Ruler", Category: "Tools", Unit: "pcs", Price: ptr(decimal.NewFromInt(5)), StockQuantity: ptr(3)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrProductNotFound)
}

// interleavedProducts ejecuta interleave una sola vez, antes de la primera
// lectura o escritura del PUT, como lo haría una factura concurrente.
type interleavedProducts struct {
	repository.ProductRepository
	once       sync.Once
	interleave func()
}

func (r *interleavedProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.once.Do(r.interleave)
	return r.ProductRepository.GetByID(ctx, id)
}

func (r *interleavedProducts) Update(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	r.once.Do(r.interleave)
	return r.ProductRepository.Update(ctx, id, patch)
}

func TestProduct_UpdateSinStockNoPisaFacturaConcurrente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	require.NoError(t, memory.NewRetailerRepository(store).Create(ctx, &entity.Retailer{ID: "r1", ShopName: "Sharma Stationers", TotalDue: decimal.Zero}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "pen", Name: "Pen", Category: "Pens", Unit: "pcs", Price: decimal.NewFromInt(10), StockQuantity: 50}))

	ledger := billing.NewLedgerUseCase(memory.NewTxRunner(store), memory.NewInvoiceRepository(store), memory.NewPaymentRepository(store), nil)
	repo := &interleavedProducts{ProductRepository: products, interleave: func() {
		_, err := ledger.CreateInvoice(ctx, dto.CreateInvoiceRequest{
			RetailerID: "r1",
			Products:   []dto.InvoiceLineRequest{{ProductID: "pen", Quantity: 10, Price: decimal.NewFromInt(10)}},
		})
		require.NoError(t, err)
	}}

	out, err := usecase.NewProductUseCase(repo).Update(ctx, "pen", dto.UpdateProductRequest{ProductName: dto.Some("Gel Pen")})
	require.NoError(t, err)
	assert.Equal(t, "Gel Pen", out.ProductName)
	assert.Equal(t, 40, out.StockQuantity)

	got, err := products.GetByID(ctx, "pen")
	require.NoError(t, err)
	assert.Equal(t, 40, got.StockQuantity, "el descuento de la factura se conserva")
	assert.Equal(t, "Gel Pen", got.Name)
	assert.Equal(t, "Pens", got.Category)
}

func TestProduct_UpdateDesconocido(t *testing.T) {
	_, err := newProductUC().Update(context.Background(), "no-existe", dto.UpdateProductRequest{ProductName: dto.Some("X")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
