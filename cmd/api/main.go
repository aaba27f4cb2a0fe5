// @title           Stationery API
// @version         1.0
// @description     Back-office de la papelería: retailers, catálogo, facturas, pagos y dashboard.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Escriba "Bearer" seguido de un espacio y el token JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stationery-api/docs"
	appanalytics "github.com/jhoicas/stationery-api/internal/application/analytics"
	"github.com/jhoicas/stationery-api/internal/application/auth"
	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stationery-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stationery-api/internal/infrastructure/ratelimit"
	"github.com/jhoicas/stationery-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/stationery-api/internal/interfaces/http"
	"github.com/jhoicas/stationery-api/pkg/config"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	// Montos como números JSON (150.5), no strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login fallará hasta configurarlo")
	}

	ctx := context.Background()
	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir storage")
	}
	defer st.Close()

	appMetrics := metrics.New()

	authUC := auth.NewAuthUseCase(st.Admins, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := billing.NewLedgerUseCase(st.TxRunner, st.Invoices, st.Payments, appMetrics)
	invoicePDFUC := billing.NewPDFUseCase(
		st.Invoices, st.Retailers, st.Payments, infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
	)
	retailerUC := usecase.NewRetailerUseCase(st.Retailers)
	productUC := usecase.NewProductUseCase(st.Products)
	dashboardUC := appanalytics.NewDashboardUseCase(st.Retailers, st.Products, st.Invoices)

	// Rate limit de login: Redis si está configurado (compartido entre réplicas), si no en memoria.
	var loginLimiter httpRouter.Limiter
	if cfg.Redis.Enabled() && cfg.HTTP.LoginRateLimit > 0 {
		client, err := ratelimit.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, rate limit en memoria")
		} else {
			defer client.Close()
			loginLimiter = ratelimit.NewRedisLimiter(client, "login", cfg.HTTP.LoginRateLimit, time.Minute)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.WithComponent("http")))
	app.Use(httpRouter.MetricsMiddleware(appMetrics))
	app.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := st.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RetailerUC:     retailerUC,
		ProductUC:      productUC,
		Ledger:         ledgerUC,
		InvoicePDF:     invoicePDFUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		Logger:         log,
		LoginRateLimit: cfg.HTTP.LoginRateLimit,
		LoginLimiter:   loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// corsConfig con credenciales solo cuando los orígenes son explícitos.
func corsConfig(origins []string) cors.Config {
	allow := strings.Join(origins, ",")
	if allow == "" {
		allow = "*"
	}
	return cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: allow != "*",
	}
}
