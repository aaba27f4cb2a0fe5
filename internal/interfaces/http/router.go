package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stationery-api/internal/application/analytics"
	"github.com/jhoicas/stationery-api/internal/application/auth"
	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	RetailerUC  *usecase.RetailerUseCase
	ProductUC   *usecase.ProductUseCase
	Ledger      *billing.LedgerUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
	JWTIssuer   string
	Logger      *logger.Logger

	// Límite de intentos de login por minuto e IP. Con LoginLimiter (Redis)
	// se comparte entre réplicas; si no, se usa el limitador de Fiber en memoria.
	LoginRateLimit int
	LoginLimiter   Limiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := api.Group("/auth")
	loginHandlers := []fiber.Handler{}
	switch {
	case deps.LoginLimiter != nil:
		loginHandlers = append(loginHandlers, RedisRateLimit(deps.LoginLimiter, log))
	case deps.LoginRateLimit > 0:
		loginHandlers = append(loginHandlers, LocalRateLimit(deps.LoginRateLimit, time.Minute))
	}
	loginHandlers = append(loginHandlers, authHandler.Login)
	authGroup.Post("/login", loginHandlers...)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	protected.Get("/auth/verify", authHandler.Verify)

	retailers := protected.Group("/retailers")
	retailerHandler := NewRetailerHandler(deps.RetailerUC, log)
	retailers.Get("/", retailerHandler.List)
	retailers.Post("/", retailerHandler.Create)
	retailers.Get("/:id", retailerHandler.GetByID)
	retailers.Put("/:id", retailerHandler.Update)
	retailers.Delete("/:id", retailerHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Ledger, deps.InvoicePDF, log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/payments", invoiceHandler.Payments)
	if deps.InvoicePDF != nil {
		invoices.Get("/:id/pdf", invoiceHandler.PDF)
	}

	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.Ledger, log)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard", dashboardHandler.Stats)
}
