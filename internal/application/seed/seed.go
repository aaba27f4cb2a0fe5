// Package seed carga el set de datos de demostración: un administrador,
// retailers, catálogo y un mes de facturas con distintos estados de pago.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stationery-api/internal/application/auth"
	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/internal/domain"
)

// Credenciales del administrador de demostración.
const (
	AdminEmail    = "admin@stationery.com"
	AdminPassword = "Admin@123"
	AdminName     = "Admin User"
)

const invoiceCount = 15

var retailers = []dto.CreateRetailerRequest{
	{ShopName: "City Books & Stationery", OwnerName: "Rajesh Kumar", PhoneNumber: "9876543210", Address: "MG Road, Bangalore"},
	{ShopName: "Students Corner", OwnerName: "Priya Sharma", PhoneNumber: "9876543211", Address: "Jayanagar, Bangalore"},
	{ShopName: "Office Supplies Hub", OwnerName: "Amit Patel", PhoneNumber: "9876543212", Address: "Koramangala, Bangalore"},
	{ShopName: "Smart Stationery", OwnerName: "Sneha Reddy", PhoneNumber: "9876543213", Address: "Whitefield, Bangalore"},
	{ShopName: "Book World", OwnerName: "Vikram Singh", PhoneNumber: "9876543214", Address: "Indiranagar, Bangalore"},
	{ShopName: "Paper Plus", OwnerName: "Meera Joshi", PhoneNumber: "9876543215", Address: "HSR Layout, Bangalore"},
	{ShopName: "Write Right Stationery", OwnerName: "Arjun Nair", PhoneNumber: "9876543216", Address: "Marathahalli, Bangalore"},
	{ShopName: "Campus Supplies", OwnerName: "Kavita Desai", PhoneNumber: "9876543217", Address: "BTM Layout, Bangalore"},
}

type product struct {
	name     string
	category string
	price    int64
	stock    int
	unit     string
}

var products = []product{
	{"A4 Notebook (200 pages)", "Notebooks", 120, 500, "pieces"},
	{"Single Line Notebook", "Notebooks", 40, 800, "pieces"},
	{"Double Line Notebook", "Notebooks", 45, 750, "pieces"},
	{"Graph Notebook", "Notebooks", 50, 300, "pieces"},
	{"Spiral Notebook A5", "Notebooks", 80, 400, "pieces"},
	{"Blue Ballpoint Pen", "Pens", 5, 2000, "pieces"},
	{"Black Ballpoint Pen", "Pens", 5, 1800, "pieces"},
	{"Gel Pen Set (5 colors)", "Pens", 50, 300, "sets"},
	{"Pencil (HB)", "Pencils", 3, 3000, "pieces"},
	{"Pencil Box", "Accessories", 60, 200, "pieces"},
	{"Eraser", "Accessories", 5, 1500, "pieces"},
	{"Sharpener", "Accessories", 5, 1200, "pieces"},
	{"Ruler (30cm)", "Accessories", 15, 600, "pieces"},
	{"Geometry Box", "Accessories", 100, 150, "pieces"},
	{"A4 Paper Ream (500 sheets)", "Paper", 250, 400, "reams"},
	{"Color Paper Pack (50 sheets)", "Paper", 120, 250, "packs"},
	{"Chart Paper (10 sheets)", "Paper", 80, 180, "packs"},
	{"Glue Stick", "Adhesives", 25, 500, "pieces"},
	{"Fevicol (100ml)", "Adhesives", 40, 300, "bottles"},
	{"Stapler", "Office Supplies", 120, 8, "pieces"},
	{"Stapler Pins (1000 pins)", "Office Supplies", 20, 400, "boxes"},
	{"Paper Clips (100 pcs)", "Office Supplies", 30, 6, "boxes"},
	{"File Folder", "Office Supplies", 35, 3, "pieces"},
	{"Highlighter (Set of 4)", "Markers", 80, 200, "sets"},
	{"Permanent Marker", "Markers", 25, 350, "pieces"},
}

// Summary cantidades creadas por Run.
type Summary struct {
	Admin     string
	Retailers int
	Products  int
	Invoices  int
	Payments  int
}

// Seeder carga los datos a través de los mismos casos de uso que la API,
// así saldos, stock y numeración quedan consistentes.
type Seeder struct {
	auth      *auth.AuthUseCase
	retailers *usecase.RetailerUseCase
	products  *usecase.ProductUseCase
	ledger    *billing.LedgerUseCase
}

// NewSeeder construye el seeder. ledger debe ser una instancia propia: Run le cambia el reloj.
func NewSeeder(
	authUC *auth.AuthUseCase,
	retailerUC *usecase.RetailerUseCase,
	productUC *usecase.ProductUseCase,
	ledgerUC *billing.LedgerUseCase,
) *Seeder {
	return &Seeder{auth: authUC, retailers: retailerUC, products: productUC, ledger: ledgerUC}
}

// Run exige un store sin retailers ni productos y usa now como referencia para
// fechar las facturas en los 30 días previos.
func (s *Seeder) Run(ctx context.Context, now time.Time) (*Summary, error) {
	if err := s.ensureEmpty(ctx); err != nil {
		return nil, err
	}

	admin, err := s.auth.CreateAdmin(ctx, AdminEmail, AdminPassword, AdminName, true)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	out := &Summary{Admin: admin.Email}

	retailerIDs := make([]string, 0, len(retailers))
	for _, in := range retailers {
		r, err := s.retailers.Create(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("seed retailer %s: %w", in.ShopName, err)
		}
		retailerIDs = append(retailerIDs, r.ID)
	}
	out.Retailers = len(retailerIDs)

	catalog := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		price := decimal.NewFromInt(p.price)
		stock := p.stock
		created, err := s.products.Create(ctx, dto.CreateProductRequest{
			ProductName:   p.name,
			Category:      p.category,
			Price:         &price,
			StockQuantity: &stock,
			Unit:          p.unit,
		})
		if err != nil {
			return nil, fmt.Errorf("seed producto %s: %w", p.name, err)
		}
		catalog = append(catalog, created)
	}
	out.Products = len(catalog)

	for i := 0; i < invoiceCount; i++ {
		date := now.UTC().AddDate(0, 0, -(30 - 2*i))
		s.ledger.WithClock(func() time.Time { return date })

		req := invoiceRequest(i, retailerIDs[i%len(retailerIDs)], catalog)
		inv, err := s.ledger.CreateInvoice(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed factura %d: %w", i+1, err)
		}
		out.Invoices++
		if inv.PaidAmount.IsPositive() {
			out.Payments++
		}
	}
	return out, nil
}

func (s *Seeder) ensureEmpty(ctx context.Context) error {
	rs, err := s.retailers.List(ctx)
	if err != nil {
		return err
	}
	ps, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	if len(rs) > 0 || len(ps) > 0 {
		return fmt.Errorf("seed: ya hay datos cargados (%d retailers, %d productos): %w",
			len(rs), len(ps), domain.ErrDuplicate)
	}
	return nil
}

// invoiceRequest arma la factura i: tres productos consecutivos, cantidad
// (i%10)+5 y pago total, mitad o nada según i%3.
func invoiceRequest(i int, retailerID string, catalog []*dto.ProductResponse) dto.CreateInvoiceRequest {
	start := i % 20
	qty := (i % 10) + 5

	lines := make([]dto.InvoiceLineRequest, 0, 3)
	total := decimal.Zero
	for _, p := range catalog[start : start+3] {
		lines = append(lines, dto.InvoiceLineRequest{
			ProductID:   p.ID,
			ProductName: p.ProductName,
			Quantity:    qty,
			Price:       p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	var paid decimal.Decimal
	switch i % 3 {
	case 0:
		paid = total
	case 1:
		paid = total.Div(decimal.NewFromInt(2))
	default:
		paid = decimal.Zero
	}
	return dto.CreateInvoiceRequest{
		RetailerID: retailerID,
		Products:   lines,
		PaidAmount: paid,
	}
}
