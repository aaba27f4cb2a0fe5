// Package analytics contiene el agregador del dashboard del back-office.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// LowStockThreshold productos con stock menor a este valor aparecen en el dashboard.
	LowStockThreshold = 10
	lowStockLimit     = 100
	recentInvoices    = 5
)

// DashboardUseCase calcula el resumen en cada llamada, sin caché.
//
// Solo lectura: retailers, productos y facturas vía sus repositorios.
type DashboardUseCase struct {
	retailerRepo repository.RetailerRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	retailerRepo repository.RetailerRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		retailerRepo: retailerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// GetStats construye el DashboardStatsResponse tomando now como referencia.
//
// Los límites de día y mes se calculan en UTC. Cinco consultas en paralelo:
//  1. ventas desde el inicio del día
//  2. ventas desde el inicio del mes
//  3. cantidad de retailers + saldo total
//  4. productos con poco stock
//  5. últimas facturas
func (uc *DashboardUseCase) GetStats(ctx context.Context, now time.Time) (*dto.DashboardStatsResponse, error) {
	now = now.UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		salesToday, salesMonth, outstanding decimal.Decimal
		retailers                           int
		lowStock                            []*entity.Product
		recent                              []*entity.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := uc.invoiceRepo.SumTotalSince(gctx, todayStart)
		if err != nil {
			return fmt.Errorf("dashboard: ventas de hoy: %w", err)
		}
		salesToday = v
		return nil
	})
	g.Go(func() error {
		v, err := uc.invoiceRepo.SumTotalSince(gctx, monthStart)
		if err != nil {
			return fmt.Errorf("dashboard: ventas del mes: %w", err)
		}
		salesMonth = v
		return nil
	})
	g.Go(func() error {
		count, due, err := uc.retailerRepo.Summary(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: saldos: %w", err)
		}
		retailers, outstanding = count, due
		return nil
	})
	g.Go(func() error {
		list, err := uc.productRepo.ListLowStock(gctx, LowStockThreshold, lowStockLimit)
		if err != nil {
			return fmt.Errorf("dashboard: stock bajo: %w", err)
		}
		lowStock = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.invoiceRepo.List(gctx, recentInvoices)
		if err != nil {
			return fmt.Errorf("dashboard: facturas recientes: %w", err)
		}
		recent = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	invoices := make([]dto.InvoiceResponse, 0, len(recent))
	for _, inv := range recent {
		invoices = append(invoices, billing.ToInvoiceResponse(inv))
	}
	return &dto.DashboardStatsResponse{
		TotalSalesToday:      salesToday,
		TotalSalesMonth:      salesMonth,
		TotalOutstandingDues: outstanding,
		TotalRetailers:       retailers,
		LowStockProducts:     usecase.ToProductList(lowStock),
		RecentInvoices:       invoices,
	}, nil
}
