package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stationery-api/internal/application/analytics"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/infrastructure/memory"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	retailers := memory.NewRetailerRepository(store)
	products := memory.NewProductRepository(store)
	invoices := memory.NewInvoiceRepository(store)

	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, retailers.Create(ctx, &entity.Retailer{ID: "r1", ShopName: "A", TotalDue: decimal.NewFromInt(120)}))
	require.NoError(t, retailers.Create(ctx, &entity.Retailer{ID: "r2", ShopName: "B", TotalDue: decimal.NewFromInt(30)}))

	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", Name: "Pen", StockQuantity: 9}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p2", Name: "Ruler", StockQuantity: 10}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p3", Name: "Eraser", StockQuantity: -2}))

	// i0, i1 hoy; i2, i4, i5 este mes; i3 mes anterior.
	dates := []time.Time{
		now.Add(-2 * time.Hour),
		now.Add(-30 * time.Minute),
		now.AddDate(0, 0, -5),
		time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC),
		now.AddDate(0, 0, -10),
		now.AddDate(0, 0, -1),
	}
	for i, dt := range dates {
		require.NoError(t, invoices.Create(ctx, &entity.Invoice{
			ID:          fmt.Sprintf("i%d", i),
			Number:      fmt.Sprintf("INV-%d", 1001+i),
			RetailerID:  "r1",
			TotalAmount: decimal.NewFromInt(int64(100 * (i + 1))),
			Status:      entity.InvoiceStatusUnpaid,
			InvoiceDate: dt,
			CreatedAt:   dt,
		}))
	}

	uc := analytics.NewDashboardUseCase(retailers, products, invoices)
	stats, err := uc.GetStats(ctx, now)
	require.NoError(t, err)

	assert.True(t, stats.TotalSalesToday.Equal(decimal.NewFromInt(100+200)), stats.TotalSalesToday.String())
	assert.True(t, stats.TotalSalesMonth.Equal(decimal.NewFromInt(100+200+300+500+600)), stats.TotalSalesMonth.String())
	assert.True(t, stats.TotalOutstandingDues.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, stats.TotalRetailers)

	require.Len(t, stats.LowStockProducts, 2, "el umbral es estricto: 10 no cuenta")
	assert.Equal(t, "p3", stats.LowStockProducts[0].ID, "menor stock primero")
	assert.Equal(t, "p1", stats.LowStockProducts[1].ID)

	require.Len(t, stats.RecentInvoices, 5)
	assert.Equal(t, "INV-1002", stats.RecentInvoices[0].InvoiceNumber)
	assert.Equal(t, "INV-1001", stats.RecentInvoices[1].InvoiceNumber)
}

func TestGetStats_Vacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(
		memory.NewRetailerRepository(store),
		memory.NewProductRepository(store),
		memory.NewInvoiceRepository(store),
	)
	stats, err := uc.GetStats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, stats.TotalSalesToday.IsZero())
	assert.Equal(t, 0, stats.TotalRetailers)
	assert.Empty(t, stats.LowStockProducts)
	assert.Empty(t, stats.RecentInvoices)
}
