package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stationery-api/internal/application/analytics"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// DashboardHandler resumen del back-office.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log, now: time.Now}
}

// Stats godoc
// @Summary      Estadísticas del dashboard
// @Description  Ventas de hoy y del mes (UTC), saldo total, retailers, stock bajo (< 10) y últimas 5 facturas.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext(), h.now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
