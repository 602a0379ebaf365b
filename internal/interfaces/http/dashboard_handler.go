package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zackv/zvshop-api/internal/application/dto"
	"github.com/zackv/zvshop-api/internal/application/reports"
)

// DashboardHandler maneja el resumen del dashboard (solo ADMIN: expone ganancias).
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día: ventas por moneda, ganancia y deuda
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD, por defecto hoy)"
// @Success      200   {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		day = parsed
	}
	out, err := h.uc.Summary(c.Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
