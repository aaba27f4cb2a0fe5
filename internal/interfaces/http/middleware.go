package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/infrastructure/ratelimit"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// RequestLogger registra cada petición al terminar: método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja escrita la respuesta para que el status registrado sea el real.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()
		reqLog := log.WithRequestID(c.Get(fiber.HeaderXRequestID))
		ev := reqLog.Info()
		if status >= 500 {
			ev = reqLog.Error()
		} else if status >= 400 {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", duration).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}

// HTTPObserver recibe la métrica de cada petición.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware mide por ruta registrada (no por path) para acotar la cardinalidad.
func MetricsMiddleware(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		obs.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}

// Limiter consulta el límite de un identificador.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (ratelimit.Result, error)
}

// RedisRateLimit limita por IP contra Redis. Si Redis falla la petición pasa y se registra.
func RedisRateLimit(l Limiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := l.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Error().Err(err).Str("ip", c.IP()).Msg("rate limiter")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", res.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", res.Remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", res.ResetAt.Unix()))
		if !res.Allowed {
			log.Warn().Str("ip", c.IP()).Int("limit", res.Limit).Msg("rate limit excedido")
			return tooManyRequests(c)
		}
		return c.Next()
	}
}

// LocalRateLimit limitador en memoria del proceso (sin Redis).
func LocalRateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		LimitReached: tooManyRequests,
	})
}

func tooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos, espere un minuto"})
}
