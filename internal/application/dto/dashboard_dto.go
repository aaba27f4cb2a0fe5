package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse resumen del back-office para GET /api/dashboard.
type DashboardStatsResponse struct {
	TotalSalesToday      decimal.Decimal   `json:"total_sales_today" swaggertype:"number"`
	TotalSalesMonth      decimal.Decimal   `json:"total_sales_month" swaggertype:"number"`
	TotalOutstandingDues decimal.Decimal   `json:"total_outstanding_dues" swaggertype:"number"`
	TotalRetailers       int               `json:"total_retailers"`
	LowStockProducts     []ProductResponse `json:"low_stock_products"`
	RecentInvoices       []InvoiceResponse `json:"recent_invoices"`
}
